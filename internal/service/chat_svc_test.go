package service

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhr/orgassist/internal/assistant/llm"
	"github.com/nexhr/orgassist/internal/assistant/memory"
	"github.com/nexhr/orgassist/internal/assistant/prompt"
	"github.com/nexhr/orgassist/internal/intent"
	"github.com/nexhr/orgassist/internal/model"
)

type fakeChatModel struct {
	lastInput []*schema.Message
	reply     string
}

func (m *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	m.lastInput = input
	return schema.AssistantMessage(m.reply, nil), nil
}

func (m *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

// Adapters filling the prompt-store interfaces the directory fakes do not
// already satisfy.

type chatDeptStore struct{ store *fakeStore }

func (d chatDeptStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Department, error) {
	for i := range d.store.depts {
		if d.store.depts[i].ID == id {
			return &d.store.depts[i], nil
		}
	}
	return nil, errors.New("department not found")
}

func (d chatDeptStore) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Department, error) {
	return d.store.deptStore().FindByOrganization(ctx, orgID)
}

type chatTaskStore struct{}

func (chatTaskStore) FindActiveByPerson(ctx context.Context, personID uuid.UUID) ([]model.Task, error) {
	return nil, nil
}

type chatSettingsStore struct{}

func (chatSettingsStore) FindByPerson(ctx context.Context, personID uuid.UUID) (*model.AISettings, error) {
	return nil, nil
}

type chatCalendarStore struct{}

func (chatCalendarStore) FindByPerson(ctx context.Context, personID uuid.UUID) ([]model.CalendarConnection, error) {
	return nil, nil
}

func newChatFixture(f *fakeStore, client *llm.Client) *ChatService {
	builder := prompt.NewBuilder(f, chatDeptStore{f}, f.relStore(), chatTaskStore{}, chatSettingsStore{}, chatCalendarStore{})
	contexts := newTestContext(f)
	mem := memory.NewManager(memory.NewInMemoryStore(), 10)
	return NewChatService(contexts, builder, mem, client)
}

func TestChatWithPersonPlaceholderWhenUnconfigured(t *testing.T) {
	orgID := uuid.New()
	sarah := testPerson(orgID, "Sarah Johnson", "8")
	f := &fakeStore{people: []model.Person{sarah}}

	client, err := llm.NewClient(context.Background(), nil)
	require.NoError(t, err)
	svc := newChatFixture(f, client)

	reply, err := svc.ChatWithPerson(context.Background(), sarah.ID, "person:"+sarah.ID.String(), "How is the quarter going?")
	require.NoError(t, err)
	assert.Equal(t, llm.PlaceholderReply, reply.Reply)
	assert.Nil(t, reply.Context)
}

func TestChatWithPersonRecordsHistory(t *testing.T) {
	orgID := uuid.New()
	sarah := testPerson(orgID, "Sarah Johnson", "8")
	f := &fakeStore{people: []model.Person{sarah}}
	fake := &fakeChatModel{reply: "going well"}
	svc := newChatFixture(f, llm.NewClientWithModel(fake))
	session := "person:" + sarah.ID.String()

	_, err := svc.ChatWithPerson(context.Background(), sarah.ID, session, "first question")
	require.NoError(t, err)
	_, err = svc.ChatWithPerson(context.Background(), sarah.ID, session, "second question")
	require.NoError(t, err)

	// Second call sees system + first exchange + new user message.
	require.Len(t, fake.lastInput, 4)
	assert.Equal(t, schema.System, fake.lastInput[0].Role)
	assert.Equal(t, "first question", fake.lastInput[1].Content)
	assert.Equal(t, "going well", fake.lastInput[2].Content)
	assert.Equal(t, "second question", fake.lastInput[3].Content)
}

func TestAskHRComposesEnrichedPrompt(t *testing.T) {
	orgID := uuid.New()
	alice := testPerson(orgID, "Alice Smith", "1")
	bob := testPerson(orgID, "Bob Jones", "2")
	f := &fakeStore{people: []model.Person{alice, bob}}
	fake := &fakeChatModel{reply: "here is my advice"}
	svc := newChatFixture(f, llm.NewClientWithModel(fake))

	reply, err := svc.AskHR(context.Background(), orgID, "hr:"+orgID.String(),
		"There is tension and conflict between Alice Smith and Bob Jones")
	require.NoError(t, err)

	assert.Equal(t, "here is my advice", reply.Reply)
	require.NotNil(t, reply.Context)
	assert.Equal(t, intent.IntentConflictResolution, reply.Context.Intent.PrimaryIntent)

	require.NotEmpty(t, fake.lastInput)
	system := fake.lastInput[0]
	assert.Equal(t, schema.System, system.Role)
	assert.Contains(t, system.Content, "## Roster")

	user := fake.lastInput[len(fake.lastInput)-1]
	assert.Equal(t, schema.User, user.Role)
	assert.Contains(t, user.Content, "[Assembled context: Found 2 relevant people")
	assert.Contains(t, user.Content, "[Suggested guidance:")
	assert.Contains(t, user.Content, "Alice Smith")
}
