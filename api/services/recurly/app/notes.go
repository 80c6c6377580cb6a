package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

type AccountNote struct {
	ID        string     `json:"id"`
	Object    string     `json:"object,omitempty"`
	AccountID string     `json:"account_id,omitempty"`
	User      *User      `json:"user,omitempty"`
	Message   string     `json:"message"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type ListNotesParams struct {
	IDs []string `query:"ids"`
}

// NoteService reads the notes attached to an account. Notes are read-only in v3.
type NoteService interface {
	List(ctx context.Context, accountID string, params ListNotesParams, opts ...gw.CallOption) (List[AccountNote], error)
	Get(ctx context.Context, accountID, noteID string, opts ...gw.CallOption) (AccountNote, error)
}

type noteService struct{ base }

func NewNoteService(g gw.Gateway, log *zap.Logger) NoteService {
	return noteService{newBase(g, log)}
}

func (s noteService) List(ctx context.Context, accountID string, params ListNotesParams, opts ...gw.CallOption) (List[AccountNote], error) {
	const op = "List Account Notes"
	path, err := resourcePath(op, "/accounts/%s/notes", accountID)
	if err != nil {
		return List[AccountNote]{}, err
	}
	return get[List[AccountNote]](ctx, s.base, op, path, params, opts)
}

func (s noteService) Get(ctx context.Context, accountID, noteID string, opts ...gw.CallOption) (AccountNote, error) {
	const op = "Get Account Note"
	path, err := resourcePath(op, "/accounts/%s/notes/%s", accountID, noteID)
	if err != nil {
		return AccountNote{}, err
	}
	return get[AccountNote](ctx, s.base, op, path, nil, opts)
}
