package okie_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/skosovsky/okie"
	"github.com/skosovsky/okie/remote"
)

func ExampleResolve() {
	base, _ := okie.ParseBaseURL("https://example.org/static/")
	for _, id := range []string{"Cargo.toml", "Cargo.toml@v2"} {
		target, err := okie.Resolve(base, id)
		if err != nil {
			panic(err)
		}
		fmt.Println(target.Path, target.URL)
	}
	// Output:
	// Cargo.toml https://example.org/static/Cargo.toml
	// Cargo.toml https://example.org/static/@v2/Cargo.toml
}

func ExampleScaffolder_Run() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/static/@rust/Cargo.toml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`name = "{{name}}"`))
	}))
	defer srv.Close()

	root, _ := os.MkdirTemp("", "okie-example-*")
	defer func() { _ = os.RemoveAll(root) }()

	s, err := okie.New(remote.NewHTTPFetcher(), okie.Context{Name: "demo"},
		okie.WithBaseURL(srv.URL+"/static/"),
		okie.WithRoot(root),
	)
	if err != nil {
		panic(err)
	}
	for _, res := range s.Run(context.Background(), []string{"Cargo.toml@rust", "nope.txt"}) {
		fmt.Println(res.ID, res.Err == nil)
	}
	data, _ := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	fmt.Println(string(data))
	// Output:
	// Cargo.toml@rust true
	// nope.txt false
	// name = "demo"
}
