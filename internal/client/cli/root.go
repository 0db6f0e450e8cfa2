package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(connected)"
	}
	return ""
}

// Root runs the read-eval-print loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to files-manager CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("fm %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: whoami, mkdir, upload, (l)s, stat, status, stats, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, status, stats, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI(ctx)
		case "mkdir":
			a.MkDir(ctx)
		case "upload":
			a.Upload(ctx)
		case "l", "ls":
			a.List(ctx, args)
		case "stat":
			if len(args) == 0 {
				fmt.Println("Usage: stat <id>")
				continue
			}
			a.Stat(ctx, args[0])
		case "status":
			a.Status(ctx)
		case "stats":
			a.Stats(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
