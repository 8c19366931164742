package component

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
)

func TestModelServer_GetComponent(t *testing.T) {
	m := NewModel(WithInitialComponents(
		testComponent(1, "meter-1").SetManufacturer("ACME"),
	))
	server := NewModelServer(m)

	got, err := server.GetComponent(context.Background(), componentspb.NewGetComponentRequest().SetId(1))
	if err != nil {
		t.Fatal(err)
	}
	if got.Manufacturer() != "ACME" {
		t.Fatalf("Manufacturer %q", got.Manufacturer())
	}

	// masked read only returns the asked for fields
	masked, err := server.GetComponent(context.Background(), componentspb.NewGetComponentRequest().
		SetId(1).
		SetReadMask(&fieldmaskpb.FieldMask{Paths: []string{"id", "name"}}))
	if err != nil {
		t.Fatal(err)
	}
	if masked.Name() != "meter-1" {
		t.Fatalf("masked Name %q", masked.Name())
	}
	if masked.Manufacturer() != "" {
		t.Fatalf("masked Manufacturer %q, want empty", masked.Manufacturer())
	}

	_, err = server.GetComponent(context.Background(), componentspb.NewGetComponentRequest().SetId(99))
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown id error %v, want NotFound", err)
	}
}

func TestModelServer_ListComponents_pagination(t *testing.T) {
	m := NewModel()
	for id := uint64(1); id <= 5; id++ {
		if _, err := m.AddComponent(testComponent(id, "c")); err != nil {
			t.Fatal(err)
		}
	}
	server := NewModelServer(m)

	var got []uint64
	token := ""
	pages := 0
	for {
		res, err := server.ListComponents(context.Background(), componentspb.NewListComponentsRequest().
			SetPageSize(2).
			SetPageToken(token))
		if err != nil {
			t.Fatal(err)
		}
		if res.TotalSize() != 5 {
			t.Fatalf("TotalSize %d, want 5", res.TotalSize())
		}
		for _, c := range res.Components() {
			got = append(got, c.Id())
		}
		pages++
		token = res.NextPageToken()
		if token == "" {
			break
		}
	}
	if pages != 3 {
		t.Fatalf("pages %d, want 3", pages)
	}
	for i, want := range []uint64{1, 2, 3, 4, 5} {
		if got[i] != want {
			t.Fatalf("ids %v", got)
		}
	}

	_, err := server.ListComponents(context.Background(), componentspb.NewListComponentsRequest().
		SetPageToken("not base64!"))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad token error %v, want InvalidArgument", err)
	}
}

func TestModelServer_ListComponents_negativePageSize(t *testing.T) {
	m := NewModel()
	if _, err := m.AddComponent(testComponent(1, "c")); err != nil {
		t.Fatal(err)
	}
	server := NewModelServer(m)

	_, err := server.ListComponents(context.Background(), componentspb.NewListComponentsRequest().
		SetPageSize(-1))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("negative page_size error %v, want InvalidArgument", err)
	}
}

func TestModelServer_WatchComponents(t *testing.T) {
	m := NewModel(WithInitialComponents(testComponent(1, "meter-1")))
	client := serveModel(t, NewModelServer(m))

	ctx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(stop)
	stream, err := client.WatchComponents(ctx, componentspb.NewWatchComponentsRequest())
	if err != nil {
		t.Fatal(err)
	}

	// seed state arrives first
	change, err := stream.Recv()
	if err != nil {
		t.Fatal(err)
	}
	if change.Type() != componentspb.ChangeAdd || change.NewValue().Id() != 1 {
		t.Fatalf("seed change %v id %d", change.Type(), change.NewValue().Id())
	}

	if _, err := m.AddComponent(testComponent(2, "bat-2")); err != nil {
		t.Fatal(err)
	}
	change, err = stream.Recv()
	if err != nil {
		t.Fatal(err)
	}
	if change.Type() != componentspb.ChangeAdd || change.NewValue().Id() != 2 {
		t.Fatalf("change %v id %d", change.Type(), change.NewValue().Id())
	}
}

// serveModel runs server on a bufconn and returns a connected client.
func serveModel(t *testing.T, server *ModelServer) componentspb.ComponentRegistryClient {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	server.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return componentspb.NewComponentRegistryClient(conn)
}
