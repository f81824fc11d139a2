package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ahmed-226/Task-Management/internal/client"
)

const usage = `taskctl - task management client

Usage:
  taskctl register -username NAME -email EMAIL -password PASS
  taskctl login -email EMAIL -password PASS
  taskctl list [-q QUERY]
  taskctl show -id ID
  taskctl add -title TITLE [-description DESC] [-status STATUS]
  taskctl status -id ID -status STATUS
  taskctl toggle -id ID -step N
  taskctl rm -id ID

The server address comes from TASKCTL_SERVER (default http://localhost:4000).
Authenticated commands read the bearer token from TASKCTL_TOKEN; login and
register print a token to export.
`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	server := os.Getenv("TASKCTL_SERVER")
	if server == "" {
		server = "http://localhost:4000"
	}

	api := client.New(server)
	api.SetToken(os.Getenv("TASKCTL_TOKEN"))
	app := client.NewApp(api)

	if err := run(app, api, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("taskctl: %v", err)
	}
}

func run(app *client.App, api *client.Client, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	query := fs.String("q", "", "search query")
	id := fs.String("id", "", "task id")
	title := fs.String("title", "", "task title")
	description := fs.String("description", "", "task description")
	status := fs.String("status", "", "task status")
	step := fs.Int("step", -1, "step index")
	fs.Parse(args)

	switch command {
	case "register":
		if err := app.Register(*username, *email, *password); err != nil {
			return err
		}
		fmt.Printf("export TASKCTL_TOKEN=%s\n", api.Token())
		return nil

	case "login":
		if err := app.Login(*email, *password); err != nil {
			return err
		}
		fmt.Printf("export TASKCTL_TOKEN=%s\n", api.Token())
		return nil

	case "list":
		if err := app.Refresh(); err != nil {
			return err
		}
		app.SetSearchQuery(*query)
		for _, task := range app.FilteredTasks() {
			fmt.Printf("%s  [%s]  %s  (%d/%d steps)\n",
				task.ID, task.Status, task.Title, doneSteps(task), len(task.Steps))
		}
		return nil

	case "show":
		task, err := api.GetTask(*id)
		if err != nil {
			return err
		}
		printTask(task)
		return nil

	case "add":
		if err := app.Refresh(); err != nil {
			return err
		}
		task, err := app.CreateTask(client.NewTask{
			Title:       *title,
			Description: *description,
			Status:      *status,
		})
		if err != nil {
			return err
		}
		printTask(task)
		return nil

	case "status":
		if err := app.Refresh(); err != nil {
			return err
		}
		task, err := app.SetStatus(*id, *status)
		if err != nil {
			return err
		}
		printTask(task)
		return nil

	case "toggle":
		if err := app.Refresh(); err != nil {
			return err
		}
		task, err := app.ToggleStep(*id, *step)
		if err != nil {
			return err
		}
		printTask(task)
		return nil

	case "rm":
		if err := app.Refresh(); err != nil {
			return err
		}
		if err := app.DeleteTask(*id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printTask(task *client.Task) {
	fmt.Printf("%s  [%s]  %s\n", task.ID, task.Status, task.Title)
	if task.Description != "" {
		fmt.Printf("  %s\n", task.Description)
	}
	for i, s := range task.Steps {
		mark := " "
		if s.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %d. %s\n", mark, i, s.Title)
	}
}

func doneSteps(task client.Task) int {
	done := 0
	for _, s := range task.Steps {
		if s.Completed {
			done++
		}
	}
	return done
}
