package resource

import (
	"encoding/base64"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GenerateUniqueId attempts to find a unique id using rng and the given
// function to check existence. It gives up after a few attempts.
func GenerateUniqueId(rng io.Reader, exists func(candidate string) bool) (string, error) {
	const tries = 10
	for i := 0; i < tries; i++ {
		r := make([]byte, 16)
		_, _ = rng.Read(r)
		candidate := base64.StdEncoding.EncodeToString(r)
		if candidate != "" && !exists(candidate) {
			return candidate, nil
		}
	}
	return "", status.Errorf(codes.Aborted, "id generation attempts exhausted after %v attempts", tries)
}
