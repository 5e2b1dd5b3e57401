package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundtrip(t *testing.T) {
	Init(NewMemoryStorage())

	sessionID := GenerateSessionID()

	in := &Data{IsAdmin: true}
	require.NoError(t, in.Write(sessionID, time.Minute))

	out := new(Data)
	require.NoError(t, out.Read(sessionID))
	assert.True(t, out.IsAdmin)
}

func TestReadMissingSessionFails(t *testing.T) {
	Init(NewMemoryStorage())

	out := new(Data)
	assert.Error(t, out.Read("does-not-exist"))
}

func TestDestroy(t *testing.T) {
	Init(NewMemoryStorage())

	sessionID := GenerateSessionID()
	in := &Data{IsAdmin: true}
	require.NoError(t, in.Write(sessionID, time.Minute))

	require.NoError(t, Destroy(sessionID))

	out := new(Data)
	assert.Error(t, out.Read(sessionID))
}

func TestExpiry(t *testing.T) {
	Init(NewMemoryStorage())

	sessionID := GenerateSessionID()
	in := &Data{IsAdmin: true}
	require.NoError(t, in.Write(sessionID, 10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)

	out := new(Data)
	assert.Error(t, out.Read(sessionID))
}

func TestGenerateSessionIDLengthAndUniqueness(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
