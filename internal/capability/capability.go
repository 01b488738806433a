// Package capability defines the host-side service interfaces behind the
// non-auth bridge operations. The interfaces are the integration points
// for the real chat, agent, document, meeting and analytics backends;
// the stub package provides the placeholder implementations the UI runs
// against until those backends land.
package capability

import (
	"context"
	"time"
)

// AgentReplyMetadata describes how an agent reply was produced.
type AgentReplyMetadata struct {
	TokensUsed     int     `json:"tokensUsed"`
	ModelUsed      string  `json:"modelUsed"`
	ProcessingTime int64   `json:"processingTime"`
	Confidence     float64 `json:"confidence"`
}

// AgentReply is the response to a single agent message.
type AgentReply struct {
	Response    string             `json:"response"`
	Suggestions []string           `json:"suggestions"`
	Metadata    AgentReplyMetadata `json:"metadata"`
}

// AgentNotificationPrefs mirrors the notification block of the agent context.
type AgentNotificationPrefs struct {
	Email            bool `json:"email"`
	Desktop          bool `json:"desktop"`
	Sound            bool `json:"sound"`
	TaskReminders    bool `json:"taskReminders"`
	MeetingReminders bool `json:"meetingReminders"`
	AgentSuggestions bool `json:"agentSuggestions"`
}

// AgentPrefs is the agent-specific preference block.
type AgentPrefs struct {
	AutoSuggestions bool   `json:"autoSuggestions"`
	VoiceEnabled    bool   `json:"voiceEnabled"`
	ResponseStyle   string `json:"responseStyle"`
}

// AgentContextPrefs is the preference document inside the agent context.
type AgentContextPrefs struct {
	Theme         string                 `json:"theme"`
	Language      string                 `json:"language"`
	Notifications AgentNotificationPrefs `json:"notifications"`
	Agent         AgentPrefs             `json:"agent"`
}

// AgentContext is the working context the agent keeps per user.
type AgentContext struct {
	UserID      string            `json:"userId"`
	JobRole     string            `json:"jobRole,omitempty"`
	Preferences AgentContextPrefs `json:"preferences"`
}

// AgentService answers agent messages and manages the agent context.
type AgentService interface {
	SendMessage(ctx context.Context, userID, message string) (*AgentReply, error)
	GetSuggestions(ctx context.Context, userID string) ([]string, error)
	CancelRequest(ctx context.Context, userID, requestID string) error
	GetContext(ctx context.Context, userID string) (*AgentContext, error)
	UpdateContext(ctx context.Context, userID string, updates map[string]any) (*AgentContext, error)
	SetJobRole(ctx context.Context, userID, jobRole string) error
}

// Pagination describes a page of list results.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// Message is one chat message.
type Message struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channelId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	EditedAt  time.Time `json:"editedAt,omitempty"`
}

// Channel is one chat channel.
type Channel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessagePage is a page of chat messages.
type MessagePage struct {
	Messages   []Message  `json:"messages"`
	Pagination Pagination `json:"pagination"`
}

// ChatService manages channels and messages.
type ChatService interface {
	GetChannels(ctx context.Context, userID string) ([]Channel, error)
	CreateChannel(ctx context.Context, userID, name string) (*Channel, error)
	DeleteChannel(ctx context.Context, userID, channelID string) error
	GetMessages(ctx context.Context, channelID string, page, limit int) (*MessagePage, error)
	SendMessage(ctx context.Context, userID, channelID, content string) (*Message, error)
	EditMessage(ctx context.Context, userID, messageID, content string) (*Message, error)
	DeleteMessage(ctx context.Context, userID, messageID string) error
	MarkRead(ctx context.Context, userID, channelID string) error
}

// Team, Task and Report are the team-domain records.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Task struct {
	ID     string `json:"id"`
	TeamID string `json:"teamId"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type Report struct {
	ID     string `json:"id"`
	TeamID string `json:"teamId"`
	Body   string `json:"body"`
}

// TeamService manages teams, members, tasks and reports.
type TeamService interface {
	GetTeams(ctx context.Context, userID string) ([]Team, error)
	CreateTeam(ctx context.Context, userID, name string) (*Team, error)
	GetMembers(ctx context.Context, teamID string) ([]string, error)
	AddMember(ctx context.Context, teamID, userID string) error
	RemoveMember(ctx context.Context, teamID, userID string) error
	GetTasks(ctx context.Context, teamID string) ([]Task, error)
	CreateTask(ctx context.Context, teamID, title string) (*Task, error)
	UpdateTask(ctx context.Context, taskID string, updates map[string]any) (*Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	GetReports(ctx context.Context, teamID string) ([]Report, error)
	SubmitReport(ctx context.Context, teamID, userID, body string) (*Report, error)
}

// Document is one stored document's metadata.
type Document struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Size  int64  `json:"size"`
}

// DocumentService manages documents and document intelligence.
type DocumentService interface {
	List(ctx context.Context, userID string) ([]Document, error)
	Get(ctx context.Context, documentID string) (*Document, error)
	Create(ctx context.Context, userID, title string) (*Document, error)
	Update(ctx context.Context, documentID string, updates map[string]any) (*Document, error)
	Delete(ctx context.Context, documentID string) error
	Upload(ctx context.Context, userID, name string, content []byte) (*Document, error)
	Download(ctx context.Context, documentID string) ([]byte, error)
	Summarize(ctx context.Context, documentID string) (string, error)
	Search(ctx context.Context, query string) ([]Document, error)
}

// Meeting is one scheduled meeting.
type Meeting struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"startsAt"`
}

// MeetingService manages meetings and meeting intelligence.
type MeetingService interface {
	List(ctx context.Context, userID string) ([]Meeting, error)
	Get(ctx context.Context, meetingID string) (*Meeting, error)
	Create(ctx context.Context, userID, title string, startsAt time.Time) (*Meeting, error)
	Update(ctx context.Context, meetingID string, updates map[string]any) (*Meeting, error)
	Delete(ctx context.Context, meetingID string) error
	GenerateNotes(ctx context.Context, meetingID string) (string, error)
	GetSuggestions(ctx context.Context, meetingID string) ([]string, error)
	Invite(ctx context.Context, meetingID string, userIDs []string) error
}

// Dashboard is the analytics overview the UI renders on the home screen.
type Dashboard struct {
	TasksCompleted   int   `json:"tasksCompleted"`
	TasksInProgress  int   `json:"tasksInProgress"`
	TasksPending     int   `json:"tasksPending"`
	TasksBlocked     int   `json:"tasksBlocked"`
	UpcomingMeetings int   `json:"upcomingMeetings"`
	UnreadMessages   int   `json:"unreadMessages"`
	PendingReports   int   `json:"pendingReports"`
	TeamPerformance  []any `json:"teamPerformance"`
}

// AnalyticsService serves aggregate metrics and accepts tracking events.
type AnalyticsService interface {
	GetDashboard(ctx context.Context, userID string) (*Dashboard, error)
	GetTeamMetrics(ctx context.Context, teamID string) (map[string]any, error)
	GetTaskMetrics(ctx context.Context, teamID string) (map[string]any, error)
	GetPerformance(ctx context.Context, userID string) (map[string]any, error)
	TrackEvent(ctx context.Context, userID, event string, properties map[string]any) error
}

// Notification is one in-app notification.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationService manages in-app notifications.
type NotificationService interface {
	GetAll(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID, notificationID string) error
}

// Integration describes one external service connection.
type Integration struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Connected bool      `json:"connected"`
	SyncedAt  time.Time `json:"syncedAt,omitempty"`
}

// IntegrationService manages connections to external services.
type IntegrationService interface {
	GetAll(ctx context.Context, userID string) ([]Integration, error)
	GetStatus(ctx context.Context, userID, provider string) (*Integration, error)
	Connect(ctx context.Context, userID, provider string) (*Integration, error)
	Disconnect(ctx context.Context, userID, provider string) error
	Sync(ctx context.Context, userID, provider string) error
}

// VoiceStatus reports the transcription pipeline state.
type VoiceStatus struct {
	Active bool   `json:"active"`
	Engine string `json:"engine"`
}

// VoiceService controls the voice transcription pipeline.
type VoiceService interface {
	Start(ctx context.Context, userID string) error
	Stop(ctx context.Context, userID string) error
	GetStatus(ctx context.Context, userID string) (*VoiceStatus, error)
}
