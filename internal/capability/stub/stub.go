// Package stub provides placeholder capability implementations. They
// return well-formed empty results so the UI renders every surface while
// the real backends are built out.
package stub

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"smartlink/host/internal/capability"
)

// Agent is a placeholder capability.AgentService. It echoes messages and
// keeps the per-user job role in memory.
type Agent struct {
	mu       sync.Mutex
	jobRoles map[string]string
}

func NewAgent() *Agent {
	return &Agent{jobRoles: map[string]string{}}
}

func (a *Agent) SendMessage(ctx context.Context, userID, message string) (*capability.AgentReply, error) {
	return &capability.AgentReply{
		Response:    fmt.Sprintf("I received your message: %q. The AI agent system is being set up.", message),
		Suggestions: []string{},
		Metadata: capability.AgentReplyMetadata{
			TokensUsed:     0,
			ModelUsed:      "placeholder",
			ProcessingTime: 0,
			Confidence:     1,
		},
	}, nil
}

func (a *Agent) GetSuggestions(ctx context.Context, userID string) ([]string, error) {
	return []string{}, nil
}

func (a *Agent) CancelRequest(ctx context.Context, userID, requestID string) error {
	return nil
}

func (a *Agent) GetContext(ctx context.Context, userID string) (*capability.AgentContext, error) {
	a.mu.Lock()
	jobRole := a.jobRoles[userID]
	a.mu.Unlock()
	return &capability.AgentContext{
		UserID:  userID,
		JobRole: jobRole,
		Preferences: capability.AgentContextPrefs{
			Theme:    "dark",
			Language: "en",
			Notifications: capability.AgentNotificationPrefs{
				Email:            true,
				Desktop:          true,
				Sound:            true,
				TaskReminders:    true,
				MeetingReminders: true,
				AgentSuggestions: true,
			},
			Agent: capability.AgentPrefs{
				AutoSuggestions: true,
				VoiceEnabled:    true,
				ResponseStyle:   "balanced",
			},
		},
	}, nil
}

func (a *Agent) UpdateContext(ctx context.Context, userID string, updates map[string]any) (*capability.AgentContext, error) {
	return a.GetContext(ctx, userID)
}

func (a *Agent) SetJobRole(ctx context.Context, userID, jobRole string) error {
	a.mu.Lock()
	a.jobRoles[userID] = jobRole
	a.mu.Unlock()
	return nil
}

// Chat is a placeholder capability.ChatService backed by in-memory maps.
type Chat struct {
	mu       sync.Mutex
	channels map[string]capability.Channel
	messages map[string][]capability.Message // by channel ID
}

func NewChat() *Chat {
	return &Chat{
		channels: map[string]capability.Channel{},
		messages: map[string][]capability.Message{},
	}
}

func (c *Chat) GetChannels(ctx context.Context, userID string) ([]capability.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]capability.Channel, 0, len(c.channels))
	for _, ch := range c.channels {
		out = append(out, ch)
	}
	return out, nil
}

func (c *Chat) CreateChannel(ctx context.Context, userID, name string) (*capability.Channel, error) {
	ch := capability.Channel{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	c.mu.Lock()
	c.channels[ch.ID] = ch
	c.mu.Unlock()
	return &ch, nil
}

func (c *Chat) DeleteChannel(ctx context.Context, userID, channelID string) error {
	c.mu.Lock()
	delete(c.channels, channelID)
	delete(c.messages, channelID)
	c.mu.Unlock()
	return nil
}

func (c *Chat) GetMessages(ctx context.Context, channelID string, page, limit int) (*capability.MessagePage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	c.mu.Lock()
	msgs := c.messages[channelID]
	c.mu.Unlock()

	total := len(msgs)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	pageMsgs := make([]capability.Message, end-start)
	copy(pageMsgs, msgs[start:end])

	totalPages := (total + limit - 1) / limit
	return &capability.MessagePage{
		Messages: pageMsgs,
		Pagination: capability.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasMore:    end < total,
		},
	}, nil
}

func (c *Chat) SendMessage(ctx context.Context, userID, channelID, content string) (*capability.Message, error) {
	msg := capability.Message{
		ID:        uuid.New().String(),
		ChannelID: channelID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	c.mu.Lock()
	c.messages[channelID] = append(c.messages[channelID], msg)
	c.mu.Unlock()
	return &msg, nil
}

func (c *Chat) EditMessage(ctx context.Context, userID, messageID, content string) (*capability.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for channelID, msgs := range c.messages {
		for i := range msgs {
			if msgs[i].ID == messageID {
				msgs[i].Content = content
				msgs[i].EditedAt = time.Now().UTC()
				c.messages[channelID] = msgs
				cp := msgs[i]
				return &cp, nil
			}
		}
	}
	return nil, fmt.Errorf("message %s not found", messageID)
}

func (c *Chat) DeleteMessage(ctx context.Context, userID, messageID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for channelID, msgs := range c.messages {
		for i := range msgs {
			if msgs[i].ID == messageID {
				c.messages[channelID] = append(msgs[:i], msgs[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (c *Chat) MarkRead(ctx context.Context, userID, channelID string) error {
	return nil
}

// Team is a placeholder capability.TeamService.
type Team struct{}

func NewTeam() *Team { return &Team{} }

func (t *Team) GetTeams(ctx context.Context, userID string) ([]capability.Team, error) {
	return []capability.Team{}, nil
}

func (t *Team) CreateTeam(ctx context.Context, userID, name string) (*capability.Team, error) {
	return &capability.Team{ID: uuid.New().String(), Name: name}, nil
}

func (t *Team) GetMembers(ctx context.Context, teamID string) ([]string, error) {
	return []string{}, nil
}

func (t *Team) AddMember(ctx context.Context, teamID, userID string) error    { return nil }
func (t *Team) RemoveMember(ctx context.Context, teamID, userID string) error { return nil }

func (t *Team) GetTasks(ctx context.Context, teamID string) ([]capability.Task, error) {
	return []capability.Task{}, nil
}

func (t *Team) CreateTask(ctx context.Context, teamID, title string) (*capability.Task, error) {
	return &capability.Task{ID: uuid.New().String(), TeamID: teamID, Title: title, Status: "pending"}, nil
}

func (t *Team) UpdateTask(ctx context.Context, taskID string, updates map[string]any) (*capability.Task, error) {
	return &capability.Task{ID: taskID}, nil
}

func (t *Team) DeleteTask(ctx context.Context, taskID string) error { return nil }

func (t *Team) GetReports(ctx context.Context, teamID string) ([]capability.Report, error) {
	return []capability.Report{}, nil
}

func (t *Team) SubmitReport(ctx context.Context, teamID, userID, body string) (*capability.Report, error) {
	return &capability.Report{ID: uuid.New().String(), TeamID: teamID, Body: body}, nil
}

// Documents is a placeholder capability.DocumentService.
type Documents struct{}

func NewDocuments() *Documents { return &Documents{} }

func (d *Documents) List(ctx context.Context, userID string) ([]capability.Document, error) {
	return []capability.Document{}, nil
}

func (d *Documents) Get(ctx context.Context, documentID string) (*capability.Document, error) {
	return nil, fmt.Errorf("document %s not found", documentID)
}

func (d *Documents) Create(ctx context.Context, userID, title string) (*capability.Document, error) {
	return &capability.Document{ID: uuid.New().String(), Title: title}, nil
}

func (d *Documents) Update(ctx context.Context, documentID string, updates map[string]any) (*capability.Document, error) {
	return &capability.Document{ID: documentID}, nil
}

func (d *Documents) Delete(ctx context.Context, documentID string) error { return nil }

func (d *Documents) Upload(ctx context.Context, userID, name string, content []byte) (*capability.Document, error) {
	return &capability.Document{ID: uuid.New().String(), Title: name, Size: int64(len(content))}, nil
}

func (d *Documents) Download(ctx context.Context, documentID string) ([]byte, error) {
	return nil, fmt.Errorf("document %s not found", documentID)
}

func (d *Documents) Summarize(ctx context.Context, documentID string) (string, error) {
	return "Document summarization is being implemented...", nil
}

func (d *Documents) Search(ctx context.Context, query string) ([]capability.Document, error) {
	return []capability.Document{}, nil
}

// Meetings is a placeholder capability.MeetingService.
type Meetings struct{}

func NewMeetings() *Meetings { return &Meetings{} }

func (m *Meetings) List(ctx context.Context, userID string) ([]capability.Meeting, error) {
	return []capability.Meeting{}, nil
}

func (m *Meetings) Get(ctx context.Context, meetingID string) (*capability.Meeting, error) {
	return nil, fmt.Errorf("meeting %s not found", meetingID)
}

func (m *Meetings) Create(ctx context.Context, userID, title string, startsAt time.Time) (*capability.Meeting, error) {
	return &capability.Meeting{ID: uuid.New().String(), Title: title, StartsAt: startsAt}, nil
}

func (m *Meetings) Update(ctx context.Context, meetingID string, updates map[string]any) (*capability.Meeting, error) {
	return &capability.Meeting{ID: meetingID}, nil
}

func (m *Meetings) Delete(ctx context.Context, meetingID string) error { return nil }

func (m *Meetings) GenerateNotes(ctx context.Context, meetingID string) (string, error) {
	return "Meeting notes generation is being implemented...", nil
}

func (m *Meetings) GetSuggestions(ctx context.Context, meetingID string) ([]string, error) {
	return []string{}, nil
}

func (m *Meetings) Invite(ctx context.Context, meetingID string, userIDs []string) error {
	return nil
}

// Analytics is a placeholder capability.AnalyticsService.
type Analytics struct{}

func NewAnalytics() *Analytics { return &Analytics{} }

func (a *Analytics) GetDashboard(ctx context.Context, userID string) (*capability.Dashboard, error) {
	return &capability.Dashboard{TeamPerformance: []any{}}, nil
}

func (a *Analytics) GetTeamMetrics(ctx context.Context, teamID string) (map[string]any, error) {
	return map[string]any{}, nil
}

func (a *Analytics) GetTaskMetrics(ctx context.Context, teamID string) (map[string]any, error) {
	return map[string]any{}, nil
}

func (a *Analytics) GetPerformance(ctx context.Context, userID string) (map[string]any, error) {
	return map[string]any{}, nil
}

func (a *Analytics) TrackEvent(ctx context.Context, userID, event string, properties map[string]any) error {
	return nil
}

// Notifications is a placeholder capability.NotificationService.
type Notifications struct{}

func NewNotifications() *Notifications { return &Notifications{} }

func (n *Notifications) GetAll(ctx context.Context, userID string) ([]capability.Notification, error) {
	return []capability.Notification{}, nil
}

func (n *Notifications) MarkRead(ctx context.Context, userID, notificationID string) error {
	return nil
}

func (n *Notifications) MarkAllRead(ctx context.Context, userID string) error { return nil }

func (n *Notifications) Delete(ctx context.Context, userID, notificationID string) error {
	return nil
}

// Integrations is a placeholder capability.IntegrationService.
type Integrations struct{}

func NewIntegrations() *Integrations { return &Integrations{} }

func (i *Integrations) GetAll(ctx context.Context, userID string) ([]capability.Integration, error) {
	return []capability.Integration{}, nil
}

func (i *Integrations) GetStatus(ctx context.Context, userID, provider string) (*capability.Integration, error) {
	return &capability.Integration{Provider: provider, Connected: false}, nil
}

func (i *Integrations) Connect(ctx context.Context, userID, provider string) (*capability.Integration, error) {
	return &capability.Integration{ID: uuid.New().String(), Provider: provider, Connected: true}, nil
}

func (i *Integrations) Disconnect(ctx context.Context, userID, provider string) error { return nil }

func (i *Integrations) Sync(ctx context.Context, userID, provider string) error { return nil }

// Voice is a placeholder capability.VoiceService tracking per-user state.
type Voice struct {
	mu     sync.Mutex
	active map[string]bool
}

func NewVoice() *Voice {
	return &Voice{active: map[string]bool{}}
}

func (v *Voice) Start(ctx context.Context, userID string) error {
	v.mu.Lock()
	v.active[userID] = true
	v.mu.Unlock()
	return nil
}

func (v *Voice) Stop(ctx context.Context, userID string) error {
	v.mu.Lock()
	delete(v.active, userID)
	v.mu.Unlock()
	return nil
}

func (v *Voice) GetStatus(ctx context.Context, userID string) (*capability.VoiceStatus, error) {
	v.mu.Lock()
	active := v.active[userID]
	v.mu.Unlock()
	return &capability.VoiceStatus{Active: active, Engine: "placeholder"}, nil
}
