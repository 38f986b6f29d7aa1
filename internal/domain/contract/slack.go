package contract

//go:generate mockgen -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UpdateMessage re-renders a previously posted message
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)

	// DeleteMessage removes a posted message
	DeleteMessage(channelID, timestamp string) (string, string, error)

	// PostEphemeral sends a message only the given user can see
	PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error)
}
