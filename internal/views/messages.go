package views

import (
	"slices"
	"strconv"
	"time"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/logger"
)

// MessageView indexes message documents and groups them into
// conversations between pairs of users.
type MessageView struct{}

// Map passes through documents of kind "msg".
func (MessageView) Map(doc domain.Document) (any, bool) {
	if doc.Kind() != domain.KindMessage {
		return nil, false
	}
	return doc, true
}

// Reduce groups messages by participant pair.
func (v MessageView) Reduce(values []any) []any {
	convs := v.Conversations(documents(values))
	out := make([]any, len(convs))
	for i := range convs {
		out[i] = convs[i]
	}
	return out
}

// Conversations groups msgs by their canonical participant pair.
// Conversations appear in the order their first message was indexed;
// messages within each are sorted by timestamp.
func (MessageView) Conversations(msgs []domain.Document) []domain.Conversation {
	var order [][2]string
	grouped := make(map[[2]string][]domain.Message)

	for _, msg := range msgs {
		from := msg.Body.String(domain.FieldFrom)
		to := msg.Body.String(domain.FieldTo)
		if from == "" || to == "" {
			logger.Warn("message %s has no sender or receiver, skipping", msg.ID)
			continue
		}
		key := domain.ConversationKey(from, to)
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], domain.Message{
			Content:   msg.Body.String(domain.FieldContent),
			Timestamp: Timestamp(msg.Body[domain.FieldTimestamp]),
			Sender:    from,
		})
	}

	convs := make([]domain.Conversation, 0, len(order))
	for _, key := range order {
		messages := grouped[key]
		slices.SortStableFunc(messages, func(a, b domain.Message) int {
			return a.Timestamp.Compare(b.Timestamp)
		})
		convs = append(convs, domain.Conversation{Participants: key, Messages: messages})
	}
	return convs
}

// Timestamp interprets a body value as a point in time.
// It accepts time.Time, RFC 3339 strings, numeric strings and numbers of
// unix seconds. Anything else is the zero time.
func Timestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if secs, err := strconv.ParseFloat(t, 64); err == nil {
			return unixSeconds(secs)
		}
		return time.Time{}
	default:
		if secs, ok := domain.ToFloat(v); ok {
			return unixSeconds(secs)
		}
		return time.Time{}
	}
}

func unixSeconds(secs float64) time.Time {
	whole := int64(secs)
	frac := secs - float64(whole)
	return time.Unix(whole, int64(frac*float64(time.Second))).UTC()
}
