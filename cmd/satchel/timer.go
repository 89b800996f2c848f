// Timer command runs the interactive pomodoro view.
package main

import (
	"github.com/spf13/cobra"

	"github.com/petar-djukic/satchel/internal/timer"
	"github.com/petar-djukic/satchel/internal/tui"
)

var timerTaskID string

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the pomodoro timer",
	Long:  "Run the interactive pomodoro timer. Completed work sessions are recorded; with --task the linked task's session counter is bumped on each completion.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		tm := timer.New(timerSettings, timer.WithOnComplete(func(c timer.Completion) {
			if c.Mode == timer.ModeWork && c.TaskID != "" {
				app.store.IncrementTaskSessions(c.TaskID)
			}
		}))
		if timerTaskID != "" {
			tm.LinkTask(timerTaskID)
		}

		tm.Start()
		defer tm.Stop()
		return tui.RunTimer(tm)
	},
}

func init() {
	timerCmd.Flags().StringVar(&timerTaskID, "task", "", "task id credited on each completed work session")
}
