package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

func threadURL(threadID, dashboardURL string) string {
	return fmt.Sprintf("%s/threads/%s", dashboardURL, threadID)
}

// BuildTakeoverMessage creates Block Kit blocks for a human-takeover
// notification: who needs help, what they last said, where to reply.
func BuildTakeoverMessage(input TakeoverInput, dashboardURL string) []goslack.Block {
	contact := input.ContactName
	if contact == "" {
		contact = input.ContactPhone
	}

	header := fmt.Sprintf(":raising_hand: *Human takeover* — %s needs an operator", contact)
	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}

	if input.LastMessage != "" {
		quote := fmt.Sprintf("*Last message:*\n> %s", truncateForSlack(input.LastMessage))
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, quote, false, false),
			nil, nil,
		))
	}

	blocks = append(blocks, linkBlock(input.ThreadID, dashboardURL, "Open Conversation"))
	return blocks
}

// BuildSaleMessage creates Block Kit blocks for an approved-sale
// notification.
func BuildSaleMessage(input SaleInput, dashboardURL string) []goslack.Block {
	contact := input.ContactName
	if contact == "" {
		contact = input.ContactPhone
	}

	text := fmt.Sprintf(":tada: *Sale approved* — %s bought for %.2f (order %s)",
		contact, input.Value, input.OrderID)
	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}

	if input.ThreadID != "" {
		blocks = append(blocks, linkBlock(input.ThreadID, dashboardURL, "Open Conversation"))
	}
	return blocks
}

func linkBlock(threadID, dashboardURL, label string) goslack.Block {
	url := threadURL(threadID, dashboardURL)
	return goslack.NewActionBlock("",
		goslack.NewButtonBlockElement("", threadID,
			goslack.NewTextBlockObject(goslack.PlainTextType, label, false, false)).
			WithURL(url),
	)
}

func truncateForSlack(s string) string {
	if len(s) <= maxBlockTextLength {
		return s
	}
	return s[:maxBlockTextLength] + "..."
}
