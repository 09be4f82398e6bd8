package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/psychmatch/internal/adapters/driven/notify"
	"github.com/custodia-labs/psychmatch/internal/adapters/driving/styles"
	"github.com/custodia-labs/psychmatch/internal/app"
	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
	"github.com/custodia-labs/psychmatch/internal/core/services"
	"github.com/custodia-labs/psychmatch/internal/views"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a short scenario against a fresh in-memory store",
	Long: `Registers two users who share a hobby, exchanges a pair of messages and
prints every match with its per-aspect criteria and the conversation so far.

The scenario uses the configured matching settings but never sends email.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	loaded, err := loadApp()
	if err != nil {
		return err
	}

	outbox := notify.NewOutbox()
	a, err := app.New(loaded.Settings, app.WithNotifier(outbox))
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	tid, err := a.Users.Create(ctx, driving.CreateUserRequest{
		Email:    "tyler@example.com",
		Username: "tyler.elric",
		Hobbies:  []string{"lol"},
	})
	if err != nil {
		return err
	}
	xid, err := a.Users.Create(ctx, driving.CreateUserRequest{
		Email:    "xlahr@example.com",
		Username: "firagastorm",
		Hobbies:  []string{"lol"},
	})
	if err != nil {
		return err
	}

	if _, err := a.Messages.Send(ctx, tid, xid, "Yooooo"); err != nil {
		return err
	}
	if _, err := a.Messages.Send(ctx, xid, tid, "Hey."); err != nil {
		return err
	}

	return printMatches(ctx, cmd, a, styles.NewStyles(nil))
}

func printMatches(ctx context.Context, cmd *cobra.Command, a *app.App, st *styles.Styles) error {
	matches, err := services.QueryAs[domain.MatchRecord](ctx, a.Engine, views.Matches)
	if err != nil {
		return err
	}
	conversations, err := services.QueryAs[domain.Conversation](ctx, a.Engine, views.Messages)
	if err != nil {
		return err
	}

	records := matches.Collect()
	if len(records) == 0 {
		cmd.Println(st.Muted.Render("No matches."))
		return nil
	}

	for _, m := range records {
		userA, err := a.Users.Get(ctx, m.A)
		if err != nil {
			return err
		}
		userB, err := a.Users.Get(ctx, m.B)
		if err != nil {
			return err
		}

		cmd.Println(st.Heading(fmt.Sprintf("%s and %s have a score of %g",
			userA.Body.String(domain.FieldUsername),
			userB.Body.String(domain.FieldUsername),
			m.Score.Overall)))
		cmd.Println("The criteria for this is:")
		for _, aspect := range m.Score.SortedAspects() {
			cmd.Println("  " + st.KeyValue(titleCase(aspect), m.Score.Aspects[aspect]))
		}

		conversations.Filter(func(c domain.Conversation) bool {
			return c.Between(m.A, m.B)
		})
		conv, ok := conversations.First()
		if !ok {
			continue
		}

		lines := make([]string, 0, 2*len(conv.Messages))
		for _, msg := range conv.Messages {
			lines = append(lines,
				fmt.Sprintf("%10s: %s", shortID(msg.Sender), msg.Content),
				st.Muted.Render(fmt.Sprintf("%10s: Sent at %s", "", msg.Timestamp.Format("2006-01-02 15:04:05"))),
			)
		}
		cmd.Println("Conversation, to-date:")
		cmd.Println(st.List(lines...))
	}
	return nil
}

// shortID keeps the last ten characters of an id.
func shortID(id string) string {
	if len(id) <= 10 {
		return id
	}
	return id[len(id)-10:]
}

// titleCase turns "shared_hobbies" into "Shared Hobbies".
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
