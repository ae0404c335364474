package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"studyrank/internal/bootstrap"
	"studyrank/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir, server string

	root := &cobra.Command{
		Use:           "studyrank",
		Short:         "Study group ranking client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.studyrank)")
	root.PersistentFlags().StringVar(&server, "server", "", "server base URL (overrides config and STUDYRANK_SERVER)")

	root.AddCommand(newTUICmd(&dataDir, &server))
	root.AddCommand(newLoginCmd(&dataDir, &server))
	root.AddCommand(newLogoutCmd(&dataDir, &server))
	root.AddCommand(newWhoamiCmd(&dataDir, &server))
	root.AddCommand(newGroupCmd(&dataDir, &server))
	root.AddCommand(newRankingCmd(&dataDir, &server))
	root.AddCommand(newActivityCmd(&dataDir, &server))
	root.AddCommand(newDoctorCmd(&dataDir, &server))
	return root
}

func loadApp(dataDir, server string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir, server)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir, server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run studyrank terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(dataDir, server *string) *cobra.Command {
	var name, email string
	login := &cobra.Command{
		Use:   "login --name <name> --email <email>",
		Short: "Create an account and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			user, err := app.SessionCLI.Login(context.Background(), name, email)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s <%s> id=%s\n", user.Name, user.Email, user.ID)
			return nil
		},
	}
	login.Flags().StringVar(&name, "name", "", "display name")
	login.Flags().StringVar(&email, "email", "", "e-mail address")
	return login
}

func newLogoutCmd(dataDir, server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(dataDir, server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			user, err := app.SessionCLI.Current(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> id=%s since=%s\n",
				user.Name, user.Email, user.ID, user.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}
}

func newGroupCmd(dataDir, server *string) *cobra.Command {
	group := &cobra.Command{Use: "group", Short: "Group membership commands"}

	group.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your groups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			groups, err := app.GroupsCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no groups")
				return nil
			}
			for _, g := range groups {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tgoal=%dd\n", g.ID, g.Name, g.GoalDays)
			}
			return nil
		},
	})

	var name, goalDays string
	create := &cobra.Command{
		Use:   "create --name <name> --goal-days <n>",
		Short: "Create a group owned by you",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			g, err := app.GroupsCLI.Create(context.Background(), name, goalDays)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) goal=%dd\n", g.Name, g.ID, g.GoalDays)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "group name")
	create.Flags().StringVar(&goalDays, "goal-days", "", "goal in days (positive integer)")
	group.AddCommand(create)

	var joinID string
	join := &cobra.Command{
		Use:   "join --group-id <id>",
		Short: "Join an existing group",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			groups, err := app.GroupsCLI.Join(context.Background(), joinID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "joined; member of %d group(s)\n", len(groups))
			return nil
		},
	}
	join.Flags().StringVar(&joinID, "group-id", "", "group id")
	group.AddCommand(join)

	var membersID string
	members := &cobra.Command{
		Use:   "members --group-id <id>",
		Short: "List a group's members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(membersID) == "" {
				return fmt.Errorf("--group-id is required")
			}
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			list, err := app.GroupsCLI.Members(context.Background(), membersID)
			if err != nil {
				return err
			}
			for _, m := range list {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.ID, m.Name, m.Email)
			}
			return nil
		},
	}
	members.Flags().StringVar(&membersID, "group-id", "", "group id")
	group.AddCommand(members)

	return group
}

func newRankingCmd(dataDir, server *string) *cobra.Command {
	var groupID string
	ranking := &cobra.Command{
		Use:   "ranking --group-id <id>",
		Short: "Show a group's activity ranking",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(groupID) == "" {
				return fmt.Errorf("--group-id is required")
			}
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			overview, err := app.ActivityCLI.Overview(context.Background(), groupID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "members=%d activities=%d\n",
				len(overview.Members), overview.Summary.TotalActivities)
			for i, row := range overview.Summary.PerUser {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d.\t%s\t%d\n", i+1, row.UserName, row.ActivitiesCount)
			}
			return nil
		},
	}
	ranking.Flags().StringVar(&groupID, "group-id", "", "group id")
	return ranking
}

func newActivityCmd(dataDir, server *string) *cobra.Command {
	activity := &cobra.Command{Use: "activity", Short: "Activity logging commands"}

	var logGroupID, description string
	logCmd := &cobra.Command{
		Use:   "log --group-id <id> --description <text>",
		Short: "Log a study activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(logGroupID) == "" {
				return fmt.Errorf("--group-id is required")
			}
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			summary, err := app.ActivityCLI.Log(context.Background(), logGroupID, description)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged; group now at %d activities\n", summary.TotalActivities)
			return nil
		},
	}
	logCmd.Flags().StringVar(&logGroupID, "group-id", "", "group id")
	logCmd.Flags().StringVar(&description, "description", "", "what you studied")
	activity.AddCommand(logCmd)

	var feedGroupID string
	feed := &cobra.Command{
		Use:   "feed --group-id <id>",
		Short: "Show a group's activity feed, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(feedGroupID) == "" {
				return fmt.Errorf("--group-id is required")
			}
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			feed, err := app.ActivityCLI.Feed(context.Background(), feedGroupID)
			if err != nil {
				return err
			}
			if len(feed) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no activities")
				return nil
			}
			for _, act := range feed {
				who := act.UserName
				if who == "" {
					who = act.UserID
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					act.CreatedAt.Format(time.RFC3339), who, act.Description)
			}
			return nil
		},
	}
	feed.Flags().StringVar(&feedGroupID, "group-id", "", "group id")
	activity.AddCommand(feed)

	return activity
}

func newDoctorCmd(dataDir, server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Probe server and database health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *server)
			if err != nil {
				return err
			}
			failed := false
			for _, check := range app.REST.Health(context.Background()) {
				marker := "OK"
				if !check.OK {
					marker = "FAIL"
					failed = true
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", marker, check.Name, check.Details)
			}
			if failed {
				return fmt.Errorf("doctor found failing checks")
			}
			return nil
		},
	}
}
