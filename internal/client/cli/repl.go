package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// handlerFn is a REPL command. args are the words after the command name.
type handlerFn func(ctx context.Context, args []string) error

// execIface is the command surface the REPL drives. App implements it;
// tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context, args []string) error
	Signup(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Whoami(ctx context.Context, args []string) error
	Feed(ctx context.Context, args []string) error
	MyFeed(ctx context.Context, args []string) error
	Post(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Follow(ctx context.Context, args []string) error
	Unfollow(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	Progress(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
	Spots(ctx context.Context, args []string) error
	Clubs(ctx context.Context, args []string) error
}

func commands(a execIface) map[string]handlerFn {
	return map[string]handlerFn{
		"home":     a.Home,
		"signup":   a.Signup,
		"login":    a.Login,
		"logout":   a.Logout,
		"whoami":   a.Whoami,
		"feed":     a.Feed,
		"myfeed":   a.MyFeed,
		"post":     a.Post,
		"comment":  a.Comment,
		"like":     a.Like,
		"profile":  a.Profile,
		"follow":   a.Follow,
		"unfollow": a.Unfollow,
		"users":    a.Users,
		"progress": a.Progress,
		"settings": a.Settings,
		"spots":    a.Spots,
		"clubs":    a.Clubs,
	}
}

const (
	helpAnonymous = "Available commands: home, signup, login, whoami, exit"
	helpSignedIn  = "Available commands: feed, myfeed, post, like <id>, comment <id> [text], " +
		"profile [id], follow <id>, unfollow <id>, users, progress [category], " +
		"settings [profile|notifications|account], spots [lat lon radius], clubs, whoami, logout, exit"
)

// runREPL reads commands from reader until EOF or exit/quit and dispatches
// them to a. The prompt shows statusFn's result.
//
// Handler errors are not acted on here: handlers report to the user and
// log on their own, so one failed call never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	handlers := commands(a)

	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("menta %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		h, ok := handlers[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		_ = h(ctx, args)
	}
}
