package notifier

import (
	"github.com/slack-go/slack"

	"github.com/degennews/web/logger"
)

// Slack posts operator alerts to a fixed channel. A missing token makes
// Alert a no-op so local setups can run without Slack.
type Slack struct {
	api       *slack.Client
	channelID string
	log       logger.Logger
}

func NewSlack(token, channelID string, log logger.Logger) *Slack {
	s := &Slack{
		channelID: channelID,
		log:       log,
	}
	if token != "" {
		s.api = slack.New(token)
	}
	return s
}

// Alert sends a message to the alerts channel.
func (s *Slack) Alert(text string) error {
	if s.api == nil || s.channelID == "" {
		s.log.Debug("slack notifier not configured, dropping alert: %s", text)
		return nil
	}

	_, _, err := s.api.PostMessage(
		s.channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		s.log.Error("failed to send alert %v to Slack channel: %s", err, s.channelID)
		return err
	}
	s.log.Info("alert sent to Slack channel: %s", s.channelID)

	return nil
}
