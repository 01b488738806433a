package bridge

// Operation names are the wire contract between the UI and the host process.
// These names must stay stable even if internal naming changes.
const (
	OpAuthLogin      = "auth:login"
	OpAuthLogout     = "auth:logout"
	OpAuthRefresh    = "auth:refresh"
	OpAuthGetSession = "auth:get-session"
	OpAuthRegister   = "auth:register"

	OpAgentSendMessage    = "agent:send-message"
	OpAgentGetSuggestions = "agent:get-suggestions"
	OpAgentCancelRequest  = "agent:cancel-request"
	OpAgentGetContext     = "agent:get-context"
	OpAgentUpdateContext  = "agent:update-context"
	OpAgentSetJobRole     = "agent:set-job-role"

	OpChatSendMessage   = "chat:send-message"
	OpChatGetChannels   = "chat:get-channels"
	OpChatGetMessages   = "chat:get-messages"
	OpChatCreateChannel = "chat:create-channel"
	OpChatDeleteChannel = "chat:delete-channel"
	OpChatMarkRead      = "chat:mark-read"
	OpChatEditMessage   = "chat:edit-message"
	OpChatDeleteMessage = "chat:delete-message"

	OpTeamGetTeams     = "team:get-teams"
	OpTeamCreateTeam   = "team:create-team"
	OpTeamGetMembers   = "team:get-members"
	OpTeamAddMember    = "team:add-member"
	OpTeamRemoveMember = "team:remove-member"
	OpTeamGetTasks     = "team:get-tasks"
	OpTeamCreateTask   = "team:create-task"
	OpTeamUpdateTask   = "team:update-task"
	OpTeamDeleteTask   = "team:delete-task"
	OpTeamGetReports   = "team:get-reports"
	OpTeamSubmitReport = "team:submit-report"

	OpDocumentsList      = "documents:list"
	OpDocumentsGet       = "documents:get"
	OpDocumentsCreate    = "documents:create"
	OpDocumentsUpdate    = "documents:update"
	OpDocumentsDelete    = "documents:delete"
	OpDocumentsUpload    = "documents:upload"
	OpDocumentsDownload  = "documents:download"
	OpDocumentsSummarize = "documents:summarize"
	OpDocumentsSearch    = "documents:search"

	OpMeetingsList           = "meetings:list"
	OpMeetingsGet            = "meetings:get"
	OpMeetingsCreate         = "meetings:create"
	OpMeetingsUpdate         = "meetings:update"
	OpMeetingsDelete         = "meetings:delete"
	OpMeetingsGenerateNotes  = "meetings:generate-notes"
	OpMeetingsGetSuggestions = "meetings:get-suggestions"
	OpMeetingsInvite         = "meetings:invite"

	OpVoiceStart     = "voice:start"
	OpVoiceStop      = "voice:stop"
	OpVoiceGetStatus = "voice:get-status"

	OpIntegrationsConnect    = "integrations:connect"
	OpIntegrationsDisconnect = "integrations:disconnect"
	OpIntegrationsSync       = "integrations:sync"
	OpIntegrationsGetStatus  = "integrations:get-status"
	OpIntegrationsGetAll     = "integrations:get-all"

	OpSettingsGet      = "settings:get"
	OpSettingsUpdate   = "settings:update"
	OpSettingsGetTheme = "settings:get-theme"
	OpSettingsSetTheme = "settings:set-theme"
	OpSettingsExport   = "settings:export"
	OpSettingsImport   = "settings:import"

	OpAnalyticsGetDashboard   = "analytics:get-dashboard"
	OpAnalyticsGetTeamMetrics = "analytics:get-team-metrics"
	OpAnalyticsGetTaskMetrics = "analytics:get-task-metrics"
	OpAnalyticsGetPerformance = "analytics:get-performance"
	OpAnalyticsTrackEvent     = "analytics:track-event"

	OpNotificationsGetAll      = "notifications:get-all"
	OpNotificationsMarkRead    = "notifications:mark-read"
	OpNotificationsMarkAllRead = "notifications:mark-all-read"
	OpNotificationsDelete      = "notifications:delete"

	OpSystemGetStatus     = "system:get-status"
	OpSystemCheckUpdates  = "system:check-updates"
	OpSystemOfflineStatus = "system:offline-status"
	OpSystemMinimize      = "system:minimize"
	OpSystemMaximize      = "system:maximize"
	OpSystemClose         = "system:close"
)

// Push channel names (host → UI). The UI may subscribe and unsubscribe but
// never publish. Any channel outside this set is rejected.
const (
	ChannelQuickAction        = "quick-action"
	ChannelNavigate           = "navigate"
	ChannelNotification       = "notification"
	ChannelChatMessage        = "chat-message"
	ChannelAgentResponse      = "agent-response"
	ChannelIntegrationUpdate  = "integration-update"
	ChannelVoiceTranscription = "voice-transcription"
)

var pushChannels = map[string]bool{
	ChannelQuickAction:        true,
	ChannelNavigate:           true,
	ChannelNotification:       true,
	ChannelChatMessage:        true,
	ChannelAgentResponse:      true,
	ChannelIntegrationUpdate:  true,
	ChannelVoiceTranscription: true,
}

// IsPushChannel reports whether name is in the closed push-channel allow-list.
func IsPushChannel(name string) bool {
	return pushChannels[name]
}
