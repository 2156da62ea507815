package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStore_Ping(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		store := NewStore(mt.Client, mt.DB.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, store.Ping(context.Background()))
	})

	mt.Run("command error", func(mt *mtest.T) {
		store := NewStore(mt.Client, mt.DB.Name())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    18,
			Name:    "AuthenticationFailed",
			Message: "Authentication failed.",
		}))

		assert.Error(mt, store.Ping(context.Background()))
	})
}
