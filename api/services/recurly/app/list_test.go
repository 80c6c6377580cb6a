package app

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
	mock_gateway "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway/mock"
)

func TestNextPage_StopsWithoutIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_gateway.NewMockGateway(ctrl)

	_, ok, err := NextPage(context.Background(), m, List[Account]{HasMore: false, Next: "/accounts?cursor=x"}, "List Accounts")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = NextPage(context.Background(), m, List[Account]{HasMore: true}, "List Accounts")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListAll_FollowsNextLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_gateway.NewMockGateway(ctrl)

	pages := map[string]List[Account]{
		"/accounts?cursor=2&limit=1": {HasMore: true, Next: "/accounts?cursor=3&limit=1", Data: []Account{{ID: "a2"}}},
		"/accounts?cursor=3&limit=1": {HasMore: false, Data: []Account{{ID: "a3"}}},
	}
	m.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, req gw.Request, out any) error {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "List Accounts", req.Op)
			assert.Equal(t, "k2", req.APIKey)
			assert.Nil(t, req.Query)
			*out.(*List[Account]) = pages[req.Path]
			return nil
		})

	first := List[Account]{HasMore: true, Next: "/accounts?cursor=2&limit=1", Data: []Account{{ID: "a1"}}}
	all, err := ListAll(context.Background(), m, first, "List Accounts", gw.WithAPIKey("k2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, accountIDs(all))
}

func TestListAll_ReturnsCollectedRecordsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_gateway.NewMockGateway(ctrl)
	boom := errors.New("boom")
	m.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

	first := List[Account]{HasMore: true, Next: "/accounts?cursor=2", Data: []Account{{ID: "a1"}}}
	all, err := ListAll(context.Background(), m, first, "List Accounts")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a1"}, accountIDs(all))
}

func accountIDs(accts []Account) []string {
	ids := make([]string, len(accts))
	for i, a := range accts {
		ids[i] = a.ID
	}
	return ids
}
