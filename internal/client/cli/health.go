package cli

import (
	"context"
	"fmt"
	"log"
)

// Status prints the backing-store liveness report.
func (a *App) Status(ctx context.Context) {
	st, err := a.api.Status(ctx)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	fmt.Printf("store: %v, cache: %v\n", st.Store, st.Cache)
}

// Stats prints aggregate user and file counts.
func (a *App) Stats(ctx context.Context) {
	st, err := a.api.Stats(ctx)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	fmt.Printf("users: %d, files: %d\n", st.Users, st.Files)
}
