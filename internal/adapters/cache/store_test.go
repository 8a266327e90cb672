package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/illBeRoy/advent-2022/internal/adapters/cache"
	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".advent", "answers.json")

	store, err := cache.NewStore(path)
	require.NoError(t, err)

	answer := domain.Answer{
		Key:       "2/1:abc",
		Day:       2,
		Task:      1,
		InputHash: "abc",
		Result:    domain.NumberResult(15),
	}
	require.NoError(t, store.Put(answer))

	got, err := store.Get("2/1:abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, answer, *got)
}

func TestStore_GetMissing(t *testing.T) {
	store, err := cache.NewStore(filepath.Join(t.TempDir(), "answers.json"))
	require.NoError(t, err)

	got, err := store.Get("2/1:nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")

	first, err := cache.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(domain.Answer{
		Key:       "5/2:ff",
		Day:       5,
		Task:      2,
		InputHash: "ff",
		Result:    domain.TextResult("MCD"),
	}))

	second, err := cache.NewStore(path)
	require.NoError(t, err)

	got, err := second.Get("5/2:ff")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.TextResult("MCD"), got.Result)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cache.NewStore(path)
	assert.Error(t, err)
}
