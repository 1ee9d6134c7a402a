package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"studyhub/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageRules(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewMessagingService(db, relationships)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := svc.Send(ctx, alice.ID, alice.ID, "hi")
	assert.ErrorIs(t, err, ErrSelfReference)

	_, err = svc.Send(ctx, alice.ID, bob.ID, "   \t\n")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = svc.Send(ctx, alice.ID, bob.ID, "hi")
	assert.ErrorIs(t, err, ErrNotFriends)

	makeFriends(t, relationships, alice.ID, bob.ID)

	messageID, err := svc.Send(ctx, alice.ID, bob.ID, "hi")
	require.NoError(t, err)

	var message models.Message
	require.NoError(t, db.First(&message, messageID).Error)
	assert.Equal(t, alice.ID, message.SenderID)
	assert.Equal(t, bob.ID, message.RecipientID)
	assert.False(t, message.IsRead)
	assert.Nil(t, message.ReadAt)
}

// Full lifecycle: request, accept, message, unfriend, message blocked again.
func TestMessagingLifecycle(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewMessagingService(db, relationships)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	requestID, err := relationships.SendRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, relationships.Respond(ctx, bob.ID, requestID, true))

	_, err = svc.Send(ctx, alice.ID, bob.ID, "hello")
	require.NoError(t, err)

	conversation, err := svc.ListConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, conversation, 1)
	assert.Equal(t, "hello", conversation[0].Content)
	assert.True(t, conversation[0].IsFromMe)
	assert.Equal(t, "alice", conversation[0].SenderName)
	assert.Equal(t, "bob", conversation[0].RecipientName)

	require.NoError(t, relationships.RemoveFriend(ctx, alice.ID, bob.ID))

	_, err = svc.Send(ctx, alice.ID, bob.ID, "hi again")
	assert.ErrorIs(t, err, ErrNotFriends)

	// History is gated on the current friendship as well.
	_, err = svc.ListConversation(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFriends)
}

func TestListConversationOrdering(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewMessagingService(db, relationships)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	makeFriends(t, relationships, alice.ID, bob.ID)
	makeFriends(t, relationships, alice.ID, carol.ID)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	insertMessage(t, db, alice.ID, bob.ID, "first", base)
	insertMessage(t, db, bob.ID, alice.ID, "second", base.Add(time.Minute))
	insertMessage(t, db, alice.ID, bob.ID, "third", base.Add(2*time.Minute))
	// Other conversations must not leak in.
	insertMessage(t, db, carol.ID, alice.ID, "noise", base.Add(3*time.Minute))

	conversation, err := svc.ListConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, conversation, 3)
	assert.Equal(t, "first", conversation[0].Content)
	assert.Equal(t, "second", conversation[1].Content)
	assert.Equal(t, "third", conversation[2].Content)
	assert.True(t, conversation[0].IsFromMe)
	assert.False(t, conversation[1].IsFromMe)
}

func TestMarkReadOnlyTouchesOwnMessages(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewMessagingService(db, relationships)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	now := time.Now().UTC()
	toBob := insertMessage(t, db, alice.ID, bob.ID, "for bob", now)
	toCarol := insertMessage(t, db, alice.ID, carol.ID, "for carol", now)
	fromBob := insertMessage(t, db, bob.ID, alice.ID, "from bob", now)

	// Bob marks everything he can see plus ids that are not his.
	err := svc.MarkRead(ctx, bob.ID, []uint{toBob.ID, toCarol.ID, fromBob.ID, 99999})
	require.NoError(t, err)

	var got models.Message
	require.NoError(t, db.First(&got, toBob.ID).Error)
	assert.True(t, got.IsRead)
	require.NotNil(t, got.ReadAt)

	got = models.Message{}
	require.NoError(t, db.First(&got, toCarol.ID).Error)
	assert.False(t, got.IsRead, "messages addressed to others stay untouched")

	got = models.Message{}
	require.NoError(t, db.First(&got, fromBob.ID).Error)
	assert.False(t, got.IsRead, "messages bob sent are not his to mark")
}

func TestMarkReadEmptyList(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessagingService(db, NewRelationshipService(db))
	alice := createUser(t, db, "alice")

	require.NoError(t, svc.MarkRead(context.Background(), alice.ID, nil))
}

func TestListRecentConversations(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewMessagingService(db, relationships)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	insertMessage(t, db, bob.ID, alice.ID, "old from bob", base)
	insertMessage(t, db, bob.ID, alice.ID, "new from bob", base.Add(time.Minute))
	insertMessage(t, db, alice.ID, carol.ID, "to carol", base.Add(2*time.Minute))
	insertMessage(t, db, carol.ID, alice.ID, "from carol", base.Add(3*time.Minute))

	summaries, err := svc.ListRecentConversations(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest conversation first.
	assert.Equal(t, carol.ID, summaries[0].UserID)
	assert.Equal(t, "carol", summaries[0].UserName)
	assert.Equal(t, "from carol", summaries[0].LastMessage)
	assert.EqualValues(t, 1, summaries[0].UnreadCount)

	assert.Equal(t, bob.ID, summaries[1].UserID)
	assert.Equal(t, "new from bob", summaries[1].LastMessage)
	assert.EqualValues(t, 2, summaries[1].UnreadCount)
}

func TestListRecentConversationsCap(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessagingService(db, NewRelationshipService(db))
	alice := createUser(t, db, "alice")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < maxRecentConversations+3; i++ {
		other := createUser(t, db, fmt.Sprintf("user%02d", i))
		insertMessage(t, db, other.ID, alice.ID, "hi", base.Add(time.Duration(i)*time.Minute))
	}

	summaries, err := svc.ListRecentConversations(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, summaries, maxRecentConversations)
	// The oldest counterparts fall off the end.
	assert.Equal(t, "user22", summaries[0].UserName)
}
