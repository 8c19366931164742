package component

import (
	"encoding/base64"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

func capPageSize(pageSize int) int {
	if pageSize == 0 {
		return defaultPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}

// decodePageToken returns the id of the last component sent on the previous
// page, or 0 for the first page.
func decodePageToken(token string) (uint64, error) {
	if token == "" {
		return 0, nil
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "bad page token: %v", err)
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "bad page token: %v", err)
	}
	return id, nil
}

func encodePageToken(lastId uint64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatUint(lastId, 10)))
}
