// Package handler exposes the capability services over the bridge.
package handler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"smartlink/host/internal/bridge"
	"smartlink/host/internal/capability"
)

// Publisher pushes host-initiated events to subscribed UI connections.
// *bridge.Server satisfies it.
type Publisher interface {
	Publish(channel string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any) {}

// Services bundles the capability implementations behind the bridge.
type Services struct {
	Agent         capability.AgentService
	Chat          capability.ChatService
	Team          capability.TeamService
	Documents     capability.DocumentService
	Meetings      capability.MeetingService
	Analytics     capability.AnalyticsService
	Notifications capability.NotificationService
	Integrations  capability.IntegrationService
	Voice         capability.VoiceService
}

type Handler struct {
	svc Services
	pub Publisher
}

// New returns the capability bridge handler. pub may be nil for hosts
// without push delivery (e.g. tests).
func New(svc Services, pub Publisher) *Handler {
	if pub == nil {
		pub = nopPublisher{}
	}
	return &Handler{svc: svc, pub: pub}
}

// Register wires every capability operation into the router.
func (h *Handler) Register(r *bridge.Router) {
	r.Handle(bridge.OpAgentSendMessage, h.agentSendMessage)
	r.Handle(bridge.OpAgentGetSuggestions, h.agentGetSuggestions)
	r.Handle(bridge.OpAgentCancelRequest, h.agentCancelRequest)
	r.Handle(bridge.OpAgentGetContext, h.agentGetContext)
	r.Handle(bridge.OpAgentUpdateContext, h.agentUpdateContext)
	r.Handle(bridge.OpAgentSetJobRole, h.agentSetJobRole)

	r.Handle(bridge.OpChatGetChannels, h.chatGetChannels)
	r.Handle(bridge.OpChatCreateChannel, h.chatCreateChannel)
	r.Handle(bridge.OpChatDeleteChannel, h.chatDeleteChannel)
	r.Handle(bridge.OpChatGetMessages, h.chatGetMessages)
	r.Handle(bridge.OpChatSendMessage, h.chatSendMessage)
	r.Handle(bridge.OpChatEditMessage, h.chatEditMessage)
	r.Handle(bridge.OpChatDeleteMessage, h.chatDeleteMessage)
	r.Handle(bridge.OpChatMarkRead, h.chatMarkRead)

	r.Handle(bridge.OpTeamGetTeams, h.teamGetTeams)
	r.Handle(bridge.OpTeamCreateTeam, h.teamCreateTeam)
	r.Handle(bridge.OpTeamGetMembers, h.teamGetMembers)
	r.Handle(bridge.OpTeamAddMember, h.teamAddMember)
	r.Handle(bridge.OpTeamRemoveMember, h.teamRemoveMember)
	r.Handle(bridge.OpTeamGetTasks, h.teamGetTasks)
	r.Handle(bridge.OpTeamCreateTask, h.teamCreateTask)
	r.Handle(bridge.OpTeamUpdateTask, h.teamUpdateTask)
	r.Handle(bridge.OpTeamDeleteTask, h.teamDeleteTask)
	r.Handle(bridge.OpTeamGetReports, h.teamGetReports)
	r.Handle(bridge.OpTeamSubmitReport, h.teamSubmitReport)

	r.Handle(bridge.OpDocumentsList, h.documentsList)
	r.Handle(bridge.OpDocumentsGet, h.documentsGet)
	r.Handle(bridge.OpDocumentsCreate, h.documentsCreate)
	r.Handle(bridge.OpDocumentsUpdate, h.documentsUpdate)
	r.Handle(bridge.OpDocumentsDelete, h.documentsDelete)
	r.Handle(bridge.OpDocumentsUpload, h.documentsUpload)
	r.Handle(bridge.OpDocumentsDownload, h.documentsDownload)
	r.Handle(bridge.OpDocumentsSummarize, h.documentsSummarize)
	r.Handle(bridge.OpDocumentsSearch, h.documentsSearch)

	r.Handle(bridge.OpMeetingsList, h.meetingsList)
	r.Handle(bridge.OpMeetingsGet, h.meetingsGet)
	r.Handle(bridge.OpMeetingsCreate, h.meetingsCreate)
	r.Handle(bridge.OpMeetingsUpdate, h.meetingsUpdate)
	r.Handle(bridge.OpMeetingsDelete, h.meetingsDelete)
	r.Handle(bridge.OpMeetingsGenerateNotes, h.meetingsGenerateNotes)
	r.Handle(bridge.OpMeetingsGetSuggestions, h.meetingsGetSuggestions)
	r.Handle(bridge.OpMeetingsInvite, h.meetingsInvite)

	r.Handle(bridge.OpAnalyticsGetDashboard, h.analyticsGetDashboard)
	r.Handle(bridge.OpAnalyticsGetTeamMetrics, h.analyticsGetTeamMetrics)
	r.Handle(bridge.OpAnalyticsGetTaskMetrics, h.analyticsGetTaskMetrics)
	r.Handle(bridge.OpAnalyticsGetPerformance, h.analyticsGetPerformance)
	r.Handle(bridge.OpAnalyticsTrackEvent, h.analyticsTrackEvent)

	r.Handle(bridge.OpNotificationsGetAll, h.notificationsGetAll)
	r.Handle(bridge.OpNotificationsMarkRead, h.notificationsMarkRead)
	r.Handle(bridge.OpNotificationsMarkAllRead, h.notificationsMarkAllRead)
	r.Handle(bridge.OpNotificationsDelete, h.notificationsDelete)

	r.Handle(bridge.OpIntegrationsGetAll, h.integrationsGetAll)
	r.Handle(bridge.OpIntegrationsGetStatus, h.integrationsGetStatus)
	r.Handle(bridge.OpIntegrationsConnect, h.integrationsConnect)
	r.Handle(bridge.OpIntegrationsDisconnect, h.integrationsDisconnect)
	r.Handle(bridge.OpIntegrationsSync, h.integrationsSync)

	r.Handle(bridge.OpVoiceStart, h.voiceStart)
	r.Handle(bridge.OpVoiceStop, h.voiceStop)
	r.Handle(bridge.OpVoiceGetStatus, h.voiceGetStatus)
}

func decodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return bridge.NewError(bridge.CodeInvalidArgument, "malformed arguments")
	}
	return nil
}

func opFailed(op string, err error) error {
	log.Printf("%s failed: %v", op, err)
	return bridge.NewError(bridge.CodeOperationFailed, "operation failed")
}

// ---- agent ----

type agentMessageArgs struct {
	Message string `json:"message"`
}

func (h *Handler) agentSendMessage(ctx context.Context, args json.RawMessage) (any, error) {
	var in agentMessageArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Message == "" {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "message must not be empty")
	}
	userID := bridge.UserID(ctx)
	reply, err := h.svc.Agent.SendMessage(ctx, userID, in.Message)
	if err != nil {
		return nil, opFailed(bridge.OpAgentSendMessage, err)
	}
	// Mirror the reply onto the push channel so streaming consumers see
	// the same content as the request/response path.
	h.pub.Publish(bridge.ChannelAgentResponse, reply)
	return reply, nil
}

func (h *Handler) agentGetSuggestions(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Agent.GetSuggestions(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpAgentGetSuggestions, err)
	}
	return out, nil
}

type cancelRequestArgs struct {
	RequestID string `json:"requestId"`
}

func (h *Handler) agentCancelRequest(ctx context.Context, args json.RawMessage) (any, error) {
	var in cancelRequestArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Agent.CancelRequest(ctx, bridge.UserID(ctx), in.RequestID); err != nil {
		return nil, opFailed(bridge.OpAgentCancelRequest, err)
	}
	return nil, nil
}

func (h *Handler) agentGetContext(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Agent.GetContext(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpAgentGetContext, err)
	}
	return out, nil
}

func (h *Handler) agentUpdateContext(ctx context.Context, args json.RawMessage) (any, error) {
	var updates map[string]any
	if err := decodeArgs(args, &updates); err != nil {
		return nil, err
	}
	out, err := h.svc.Agent.UpdateContext(ctx, bridge.UserID(ctx), updates)
	if err != nil {
		return nil, opFailed(bridge.OpAgentUpdateContext, err)
	}
	return out, nil
}

type jobRoleArgs struct {
	JobRole string `json:"jobRole"`
}

func (h *Handler) agentSetJobRole(ctx context.Context, args json.RawMessage) (any, error) {
	var in jobRoleArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Agent.SetJobRole(ctx, bridge.UserID(ctx), in.JobRole); err != nil {
		return nil, opFailed(bridge.OpAgentSetJobRole, err)
	}
	return nil, nil
}

// ---- chat ----

type channelArgs struct {
	ChannelID string `json:"channelId"`
}

func (h *Handler) chatGetChannels(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Chat.GetChannels(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpChatGetChannels, err)
	}
	return out, nil
}

type createChannelArgs struct {
	Name string `json:"name"`
}

func (h *Handler) chatCreateChannel(ctx context.Context, args json.RawMessage) (any, error) {
	var in createChannelArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "channel name must not be empty")
	}
	out, err := h.svc.Chat.CreateChannel(ctx, bridge.UserID(ctx), in.Name)
	if err != nil {
		return nil, opFailed(bridge.OpChatCreateChannel, err)
	}
	return out, nil
}

func (h *Handler) chatDeleteChannel(ctx context.Context, args json.RawMessage) (any, error) {
	var in channelArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Chat.DeleteChannel(ctx, bridge.UserID(ctx), in.ChannelID); err != nil {
		return nil, opFailed(bridge.OpChatDeleteChannel, err)
	}
	return nil, nil
}

type getMessagesArgs struct {
	ChannelID string `json:"channelId"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

func (h *Handler) chatGetMessages(ctx context.Context, args json.RawMessage) (any, error) {
	var in getMessagesArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Chat.GetMessages(ctx, in.ChannelID, in.Page, in.Limit)
	if err != nil {
		return nil, opFailed(bridge.OpChatGetMessages, err)
	}
	return out, nil
}

type sendMessageArgs struct {
	ChannelID string `json:"channelId"`
	Content   string `json:"content"`
}

func (h *Handler) chatSendMessage(ctx context.Context, args json.RawMessage) (any, error) {
	var in sendMessageArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Content == "" {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "message content must not be empty")
	}
	msg, err := h.svc.Chat.SendMessage(ctx, bridge.UserID(ctx), in.ChannelID, in.Content)
	if err != nil {
		return nil, opFailed(bridge.OpChatSendMessage, err)
	}
	h.pub.Publish(bridge.ChannelChatMessage, msg)
	return msg, nil
}

type editMessageArgs struct {
	MessageID string `json:"messageId"`
	Content   string `json:"content"`
}

func (h *Handler) chatEditMessage(ctx context.Context, args json.RawMessage) (any, error) {
	var in editMessageArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Chat.EditMessage(ctx, bridge.UserID(ctx), in.MessageID, in.Content)
	if err != nil {
		return nil, opFailed(bridge.OpChatEditMessage, err)
	}
	return out, nil
}

type messageIDArgs struct {
	MessageID string `json:"messageId"`
}

func (h *Handler) chatDeleteMessage(ctx context.Context, args json.RawMessage) (any, error) {
	var in messageIDArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Chat.DeleteMessage(ctx, bridge.UserID(ctx), in.MessageID); err != nil {
		return nil, opFailed(bridge.OpChatDeleteMessage, err)
	}
	return nil, nil
}

func (h *Handler) chatMarkRead(ctx context.Context, args json.RawMessage) (any, error) {
	var in channelArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Chat.MarkRead(ctx, bridge.UserID(ctx), in.ChannelID); err != nil {
		return nil, opFailed(bridge.OpChatMarkRead, err)
	}
	return nil, nil
}

// ---- team ----

type teamArgs struct {
	TeamID string `json:"teamId"`
}

func (h *Handler) teamGetTeams(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Team.GetTeams(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpTeamGetTeams, err)
	}
	return out, nil
}

type createTeamArgs struct {
	Name string `json:"name"`
}

func (h *Handler) teamCreateTeam(ctx context.Context, args json.RawMessage) (any, error) {
	var in createTeamArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "team name must not be empty")
	}
	out, err := h.svc.Team.CreateTeam(ctx, bridge.UserID(ctx), in.Name)
	if err != nil {
		return nil, opFailed(bridge.OpTeamCreateTeam, err)
	}
	return out, nil
}

func (h *Handler) teamGetMembers(ctx context.Context, args json.RawMessage) (any, error) {
	var in teamArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Team.GetMembers(ctx, in.TeamID)
	if err != nil {
		return nil, opFailed(bridge.OpTeamGetMembers, err)
	}
	return out, nil
}

type memberArgs struct {
	TeamID string `json:"teamId"`
	UserID string `json:"userId"`
}

func (h *Handler) teamAddMember(ctx context.Context, args json.RawMessage) (any, error) {
	var in memberArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Team.AddMember(ctx, in.TeamID, in.UserID); err != nil {
		return nil, opFailed(bridge.OpTeamAddMember, err)
	}
	return nil, nil
}

func (h *Handler) teamRemoveMember(ctx context.Context, args json.RawMessage) (any, error) {
	var in memberArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Team.RemoveMember(ctx, in.TeamID, in.UserID); err != nil {
		return nil, opFailed(bridge.OpTeamRemoveMember, err)
	}
	return nil, nil
}

func (h *Handler) teamGetTasks(ctx context.Context, args json.RawMessage) (any, error) {
	var in teamArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Team.GetTasks(ctx, in.TeamID)
	if err != nil {
		return nil, opFailed(bridge.OpTeamGetTasks, err)
	}
	return out, nil
}

type createTaskArgs struct {
	TeamID string `json:"teamId"`
	Title  string `json:"title"`
}

func (h *Handler) teamCreateTask(ctx context.Context, args json.RawMessage) (any, error) {
	var in createTaskArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Team.CreateTask(ctx, in.TeamID, in.Title)
	if err != nil {
		return nil, opFailed(bridge.OpTeamCreateTask, err)
	}
	return out, nil
}

type updateTaskArgs struct {
	TaskID  string         `json:"taskId"`
	Updates map[string]any `json:"updates"`
}

func (h *Handler) teamUpdateTask(ctx context.Context, args json.RawMessage) (any, error) {
	var in updateTaskArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Team.UpdateTask(ctx, in.TaskID, in.Updates)
	if err != nil {
		return nil, opFailed(bridge.OpTeamUpdateTask, err)
	}
	return out, nil
}

type taskIDArgs struct {
	TaskID string `json:"taskId"`
}

func (h *Handler) teamDeleteTask(ctx context.Context, args json.RawMessage) (any, error) {
	var in taskIDArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Team.DeleteTask(ctx, in.TaskID); err != nil {
		return nil, opFailed(bridge.OpTeamDeleteTask, err)
	}
	return nil, nil
}

func (h *Handler) teamGetReports(ctx context.Context, args json.RawMessage) (any, error) {
	var in teamArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Team.GetReports(ctx, in.TeamID)
	if err != nil {
		return nil, opFailed(bridge.OpTeamGetReports, err)
	}
	return out, nil
}

type submitReportArgs struct {
	TeamID string `json:"teamId"`
	Body   string `json:"body"`
}

func (h *Handler) teamSubmitReport(ctx context.Context, args json.RawMessage) (any, error) {
	var in submitReportArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Team.SubmitReport(ctx, in.TeamID, bridge.UserID(ctx), in.Body)
	if err != nil {
		return nil, opFailed(bridge.OpTeamSubmitReport, err)
	}
	return out, nil
}

// ---- documents ----

type documentArgs struct {
	DocumentID string `json:"documentId"`
}

func (h *Handler) documentsList(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Documents.List(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpDocumentsList, err)
	}
	return out, nil
}

func (h *Handler) documentsGet(ctx context.Context, args json.RawMessage) (any, error) {
	var in documentArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Documents.Get(ctx, in.DocumentID)
	if err != nil {
		return nil, bridge.NewError(bridge.CodeOperationFailed, "document not found")
	}
	return out, nil
}

type createDocumentArgs struct {
	Title string `json:"title"`
}

func (h *Handler) documentsCreate(ctx context.Context, args json.RawMessage) (any, error) {
	var in createDocumentArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Documents.Create(ctx, bridge.UserID(ctx), in.Title)
	if err != nil {
		return nil, opFailed(bridge.OpDocumentsCreate, err)
	}
	return out, nil
}

type updateDocumentArgs struct {
	DocumentID string         `json:"documentId"`
	Updates    map[string]any `json:"updates"`
}

func (h *Handler) documentsUpdate(ctx context.Context, args json.RawMessage) (any, error) {
	var in updateDocumentArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Documents.Update(ctx, in.DocumentID, in.Updates)
	if err != nil {
		return nil, opFailed(bridge.OpDocumentsUpdate, err)
	}
	return out, nil
}

func (h *Handler) documentsDelete(ctx context.Context, args json.RawMessage) (any, error) {
	var in documentArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Documents.Delete(ctx, in.DocumentID); err != nil {
		return nil, opFailed(bridge.OpDocumentsDelete, err)
	}
	return nil, nil
}

type uploadArgs struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

func (h *Handler) documentsUpload(ctx context.Context, args json.RawMessage) (any, error) {
	var in uploadArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Documents.Upload(ctx, bridge.UserID(ctx), in.Name, in.Content)
	if err != nil {
		return nil, opFailed(bridge.OpDocumentsUpload, err)
	}
	return out, nil
}

func (h *Handler) documentsDownload(ctx context.Context, args json.RawMessage) (any, error) {
	var in documentArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	content, err := h.svc.Documents.Download(ctx, in.DocumentID)
	if err != nil {
		return nil, bridge.NewError(bridge.CodeOperationFailed, "document not found")
	}
	return map[string]any{"content": content}, nil
}

func (h *Handler) documentsSummarize(ctx context.Context, args json.RawMessage) (any, error) {
	var in documentArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	summary, err := h.svc.Documents.Summarize(ctx, in.DocumentID)
	if err != nil {
		return nil, opFailed(bridge.OpDocumentsSummarize, err)
	}
	return map[string]string{"summary": summary}, nil
}

type searchArgs struct {
	Query string `json:"query"`
}

func (h *Handler) documentsSearch(ctx context.Context, args json.RawMessage) (any, error) {
	var in searchArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Documents.Search(ctx, in.Query)
	if err != nil {
		return nil, opFailed(bridge.OpDocumentsSearch, err)
	}
	return out, nil
}

// ---- meetings ----

type meetingArgs struct {
	MeetingID string `json:"meetingId"`
}

func (h *Handler) meetingsList(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Meetings.List(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpMeetingsList, err)
	}
	return out, nil
}

func (h *Handler) meetingsGet(ctx context.Context, args json.RawMessage) (any, error) {
	var in meetingArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Meetings.Get(ctx, in.MeetingID)
	if err != nil {
		return nil, bridge.NewError(bridge.CodeOperationFailed, "meeting not found")
	}
	return out, nil
}

type createMeetingArgs struct {
	Title    string    `json:"title"`
	StartsAt time.Time `json:"startsAt"`
}

func (h *Handler) meetingsCreate(ctx context.Context, args json.RawMessage) (any, error) {
	var in createMeetingArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Meetings.Create(ctx, bridge.UserID(ctx), in.Title, in.StartsAt)
	if err != nil {
		return nil, opFailed(bridge.OpMeetingsCreate, err)
	}
	return out, nil
}

type updateMeetingArgs struct {
	MeetingID string         `json:"meetingId"`
	Updates   map[string]any `json:"updates"`
}

func (h *Handler) meetingsUpdate(ctx context.Context, args json.RawMessage) (any, error) {
	var in updateMeetingArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Meetings.Update(ctx, in.MeetingID, in.Updates)
	if err != nil {
		return nil, opFailed(bridge.OpMeetingsUpdate, err)
	}
	return out, nil
}

func (h *Handler) meetingsDelete(ctx context.Context, args json.RawMessage) (any, error) {
	var in meetingArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Meetings.Delete(ctx, in.MeetingID); err != nil {
		return nil, opFailed(bridge.OpMeetingsDelete, err)
	}
	return nil, nil
}

func (h *Handler) meetingsGenerateNotes(ctx context.Context, args json.RawMessage) (any, error) {
	var in meetingArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	notes, err := h.svc.Meetings.GenerateNotes(ctx, in.MeetingID)
	if err != nil {
		return nil, opFailed(bridge.OpMeetingsGenerateNotes, err)
	}
	return map[string]string{"notes": notes}, nil
}

func (h *Handler) meetingsGetSuggestions(ctx context.Context, args json.RawMessage) (any, error) {
	var in meetingArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Meetings.GetSuggestions(ctx, in.MeetingID)
	if err != nil {
		return nil, opFailed(bridge.OpMeetingsGetSuggestions, err)
	}
	return out, nil
}

type inviteArgs struct {
	MeetingID string   `json:"meetingId"`
	UserIDs   []string `json:"userIds"`
}

func (h *Handler) meetingsInvite(ctx context.Context, args json.RawMessage) (any, error) {
	var in inviteArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Meetings.Invite(ctx, in.MeetingID, in.UserIDs); err != nil {
		return nil, opFailed(bridge.OpMeetingsInvite, err)
	}
	return nil, nil
}

// ---- analytics ----

func (h *Handler) analyticsGetDashboard(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Analytics.GetDashboard(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpAnalyticsGetDashboard, err)
	}
	return out, nil
}

func (h *Handler) analyticsGetTeamMetrics(ctx context.Context, args json.RawMessage) (any, error) {
	var in teamArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Analytics.GetTeamMetrics(ctx, in.TeamID)
	if err != nil {
		return nil, opFailed(bridge.OpAnalyticsGetTeamMetrics, err)
	}
	return out, nil
}

func (h *Handler) analyticsGetTaskMetrics(ctx context.Context, args json.RawMessage) (any, error) {
	var in teamArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Analytics.GetTaskMetrics(ctx, in.TeamID)
	if err != nil {
		return nil, opFailed(bridge.OpAnalyticsGetTaskMetrics, err)
	}
	return out, nil
}

func (h *Handler) analyticsGetPerformance(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Analytics.GetPerformance(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpAnalyticsGetPerformance, err)
	}
	return out, nil
}

type trackEventArgs struct {
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties"`
}

func (h *Handler) analyticsTrackEvent(ctx context.Context, args json.RawMessage) (any, error) {
	var in trackEventArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Analytics.TrackEvent(ctx, bridge.UserID(ctx), in.Event, in.Properties); err != nil {
		return nil, opFailed(bridge.OpAnalyticsTrackEvent, err)
	}
	return nil, nil
}

// ---- notifications ----

type notificationArgs struct {
	NotificationID string `json:"notificationId"`
}

func (h *Handler) notificationsGetAll(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Notifications.GetAll(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpNotificationsGetAll, err)
	}
	return out, nil
}

func (h *Handler) notificationsMarkRead(ctx context.Context, args json.RawMessage) (any, error) {
	var in notificationArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Notifications.MarkRead(ctx, bridge.UserID(ctx), in.NotificationID); err != nil {
		return nil, opFailed(bridge.OpNotificationsMarkRead, err)
	}
	return nil, nil
}

func (h *Handler) notificationsMarkAllRead(ctx context.Context, args json.RawMessage) (any, error) {
	if err := h.svc.Notifications.MarkAllRead(ctx, bridge.UserID(ctx)); err != nil {
		return nil, opFailed(bridge.OpNotificationsMarkAllRead, err)
	}
	return nil, nil
}

func (h *Handler) notificationsDelete(ctx context.Context, args json.RawMessage) (any, error) {
	var in notificationArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Notifications.Delete(ctx, bridge.UserID(ctx), in.NotificationID); err != nil {
		return nil, opFailed(bridge.OpNotificationsDelete, err)
	}
	return nil, nil
}

// ---- integrations ----

type providerArgs struct {
	Provider string `json:"provider"`
}

func (h *Handler) integrationsGetAll(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Integrations.GetAll(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpIntegrationsGetAll, err)
	}
	return out, nil
}

func (h *Handler) integrationsGetStatus(ctx context.Context, args json.RawMessage) (any, error) {
	var in providerArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Integrations.GetStatus(ctx, bridge.UserID(ctx), in.Provider)
	if err != nil {
		return nil, opFailed(bridge.OpIntegrationsGetStatus, err)
	}
	return out, nil
}

func (h *Handler) integrationsConnect(ctx context.Context, args json.RawMessage) (any, error) {
	var in providerArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	out, err := h.svc.Integrations.Connect(ctx, bridge.UserID(ctx), in.Provider)
	if err != nil {
		return nil, opFailed(bridge.OpIntegrationsConnect, err)
	}
	h.pub.Publish(bridge.ChannelIntegrationUpdate, out)
	return out, nil
}

func (h *Handler) integrationsDisconnect(ctx context.Context, args json.RawMessage) (any, error) {
	var in providerArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Integrations.Disconnect(ctx, bridge.UserID(ctx), in.Provider); err != nil {
		return nil, opFailed(bridge.OpIntegrationsDisconnect, err)
	}
	h.pub.Publish(bridge.ChannelIntegrationUpdate, map[string]any{
		"provider":  in.Provider,
		"connected": false,
	})
	return nil, nil
}

func (h *Handler) integrationsSync(ctx context.Context, args json.RawMessage) (any, error) {
	var in providerArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if err := h.svc.Integrations.Sync(ctx, bridge.UserID(ctx), in.Provider); err != nil {
		return nil, opFailed(bridge.OpIntegrationsSync, err)
	}
	return nil, nil
}

// ---- voice ----

func (h *Handler) voiceStart(ctx context.Context, args json.RawMessage) (any, error) {
	if err := h.svc.Voice.Start(ctx, bridge.UserID(ctx)); err != nil {
		return nil, opFailed(bridge.OpVoiceStart, err)
	}
	return nil, nil
}

func (h *Handler) voiceStop(ctx context.Context, args json.RawMessage) (any, error) {
	if err := h.svc.Voice.Stop(ctx, bridge.UserID(ctx)); err != nil {
		return nil, opFailed(bridge.OpVoiceStop, err)
	}
	return nil, nil
}

func (h *Handler) voiceGetStatus(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := h.svc.Voice.GetStatus(ctx, bridge.UserID(ctx))
	if err != nil {
		return nil, opFailed(bridge.OpVoiceGetStatus, err)
	}
	return out, nil
}
