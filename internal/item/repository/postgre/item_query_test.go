package postgre

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	repo "item-service/internal/item/repository"
)

func TestBuildFindByIDQuery(t *testing.T) {
	r := &implRepository{}
	id := uuid.New()

	query, args := r.buildFindByIDQuery(repo.FindItemOptions{ID: id})
	if strings.Contains(query, "FOR UPDATE") {
		t.Errorf("plain lookup must not lock: %s", query)
	}
	if len(args) != 1 || args[0] != id {
		t.Errorf("unexpected args: %v", args)
	}

	query, _ = r.buildFindByIDQuery(repo.FindItemOptions{ID: id, ForUpdate: true})
	if !strings.HasSuffix(query, "FOR UPDATE") {
		t.Errorf("expected FOR UPDATE suffix: %s", query)
	}
}
