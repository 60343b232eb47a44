package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	soukhub "github.com/soukhub/soukhub-go"
	"github.com/soukhub/soukhub-go/client"
	"github.com/soukhub/soukhub-go/schema"
)

type Options struct {
	soukhub.ClientOptions

	Email    string `long:"email" description:"login email"`
	Password string `long:"password" description:"login password"`
	Watch    bool   `short:"w" long:"watch" description:"keep polling (notifications command)"`
	Verbose  bool   `short:"v" long:"verbose" description:"debug logging"`

	Args struct {
		Command string   `positional-arg-name:"command" description:"login|logout|whoami|shops|products|cart|orders|missions|accept|refuse|notifications"`
		Rest    []string `positional-arg-name:"args"`
	} `positional-args:"yes"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "souk:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if options.SessionURL == "" {
		options.SessionURL = soukhub.DefaultSessionURL()
	}
	level := zerolog.InfoLevel
	if options.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	options.Logger = &logger

	cli, err := soukhub.New(&options.ClientOptions)
	if err != nil {
		return err
	}
	ctx := context.Background()
	return dispatch(ctx, cli, options)
}

func dispatch(ctx context.Context, cli *client.Client, options *Options) error {
	switch options.Args.Command {
	case "login":
		if options.Email == "" || options.Password == "" {
			return errors.New("login requires --email and --password")
		}
		user, err := cli.Login(ctx, options.Email, options.Password)
		if err != nil {
			return err
		}
		return printJSON(user)
	case "logout":
		return cli.Logout(ctx)
	case "whoami":
		user, err := cli.Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)
	case "shops":
		shops, err := cli.ListShops(ctx)
		if err != nil {
			return err
		}
		return printJSON(shops)
	case "products":
		query := schema.ProductQuery{}
		if len(options.Args.Rest) > 0 {
			query.Search = options.Args.Rest[0]
		}
		products, err := cli.ListProducts(ctx, query)
		if err != nil {
			return err
		}
		return printJSON(products)
	case "cart":
		cart, err := cli.Cart(ctx)
		if err != nil {
			return err
		}
		return printJSON(cart)
	case "orders":
		orders, err := cli.ListMyOrders(ctx)
		if err != nil {
			return err
		}
		return printJSON(orders)
	case "missions":
		if len(options.Args.Rest) > 0 && options.Args.Rest[0] == "available" {
			missions, err := cli.ListAvailableMissions(ctx)
			if err != nil {
				return err
			}
			return printJSON(missions)
		}
		missions, err := cli.ListMyMissions(ctx)
		if err != nil {
			return err
		}
		return printJSON(missions)
	case "accept", "refuse":
		if len(options.Args.Rest) == 0 {
			return fmt.Errorf("%s requires a mission id", options.Args.Command)
		}
		id := schema.ID(options.Args.Rest[0])
		var mission *schema.Mission
		var err error
		if options.Args.Command == "accept" {
			mission, err = cli.AcceptMission(ctx, id)
		} else {
			mission, err = cli.RefuseMission(ctx, id)
		}
		if err != nil {
			return err
		}
		return printJSON(mission)
	case "notifications":
		if !options.Watch {
			notifications, err := cli.ListNotifications(ctx)
			if err != nil {
				return err
			}
			return printJSON(notifications)
		}
		watcher := cli.NotificationWatcher(client.WithInterval(15 * time.Second))
		for notification := range watcher.Watch(ctx) {
			if err := printJSON(notification); err != nil {
				return err
			}
		}
		return nil
	case "":
		return errors.New("missing command, try: login, logout, whoami, shops, products, cart, orders, missions, accept, refuse, notifications")
	default:
		return fmt.Errorf("unknown command %q", options.Args.Command)
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
