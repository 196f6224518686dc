//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"content-planner/database"
)

func TestMongoKV(t *testing.T) {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := database.ConnectMongo(ctx, uri)
	require.NoError(t, err)

	kv := NewMongoKV(client, "planner_test", "kv")
	defer kv.Close()

	_, found, err := kv.Get(ctx, "posts")
	require.NoError(t, err)
	assert.False(t, found)

	repo := NewPostRepository(kv, "posts")
	require.NoError(t, repo.SaveAll(ctx, samplePosts()))
	require.NoError(t, repo.SaveAll(ctx, samplePosts()[:1]))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, samplePosts()[:1], got)
}
