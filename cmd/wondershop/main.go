// Command wondershop is a terminal front end over the client SDK: it wires
// config, storage, the API client and the stores, and exposes the flows the
// web views would drive (login, browse, cart, checkout).
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Hamza99-sudo/wondershop-client/internal/api"
	"github.com/Hamza99-sudo/wondershop-client/internal/catalog"
	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
	"github.com/Hamza99-sudo/wondershop-client/internal/guard"
	"github.com/Hamza99-sudo/wondershop-client/internal/infrastructure/localstore"
	"github.com/Hamza99-sudo/wondershop-client/internal/store"
	"github.com/Hamza99-sudo/wondershop-client/pkg/config"
	"github.com/Hamza99-sudo/wondershop-client/pkg/logger"
	"github.com/Hamza99-sudo/wondershop-client/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("loading configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	state, err := localstore.New(cfg.App.StateDir)
	if err != nil {
		log.Fatal().Err(err).Msg("opening state dir")
	}

	client := api.New(api.Options{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		Tokens:      localstore.NewTokenStore(state, log),
		Logger:      log,
		RefreshSkew: cfg.Sync.RefreshSkew,
		OnSessionExpired: func() {
			fmt.Fprintln(os.Stderr, "Session expired, please log in again.")
		},
	})

	session := store.NewSessionStore(client.Auth, client, state, log)
	cart := store.NewCartStore(state, log)
	routes := guard.New(session, guard.DefaultRoutes())

	ctx := context.Background()
	// Startup bootstrap: restore the session from stored credentials.
	session.CheckAuth(ctx)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "login":
		runLogin(ctx, session, os.Args[2:])
	case "logout":
		session.Logout(ctx)
		fmt.Println("Logged out.")
	case "whoami":
		runWhoAmI(session)
	case "shop":
		runShop(ctx, client, os.Args[2:])
	case "cart":
		runCart(ctx, client, cart, routes, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: wondershop <command>

  login <email> <password>       sign in
  logout                         sign out
  whoami                         show the current session
  shop [query]                   list products, optionally filtered
  cart add <productId> <size> <color> [qty]
  cart list
  cart mode <retail|wholesale>
  cart checkout <address>`)
}

func runLogin(ctx context.Context, session *store.SessionStore, args []string) {
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}
	if res := session.Login(ctx, args[0], args[1]); !res.Success {
		fmt.Fprintln(os.Stderr, res.Message)
		os.Exit(1)
	}
	user := session.User()
	fmt.Printf("Welcome %s (%s)\n", user.DisplayName(), user.Role)
}

func runWhoAmI(session *store.SessionStore) {
	user := session.User()
	if user == nil {
		fmt.Println("Not signed in.")
		return
	}
	fmt.Printf("%s <%s> role=%s staff=%v driver=%v\n",
		user.DisplayName(), user.Email, user.Role, session.IsStaff(), session.IsDriver())
}

func runShop(ctx context.Context, client *api.Client, args []string) {
	page, err := client.Products.List(ctx, api.ProductFilter{ListParams: api.ListParams{Limit: 50}})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not load products:", err)
		os.Exit(1)
	}
	items := page.Items
	if len(args) > 0 {
		items = catalog.Filter(items, strings.Join(args, " "))
	}
	for _, p := range items {
		fmt.Printf("%-12s %-30s retail %-12s wholesale %s (min %d)\n",
			p.SKU, p.Name, money.FormatPrice(p.RetailPrice), money.FormatPrice(p.WholesalePrice), p.MinWholesaleQty)
	}
}

func runCart(ctx context.Context, client *api.Client, cart *store.CartStore, routes *guard.Guard, args []string) {
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	switch args[0] {
	case "add":
		if len(args) < 4 {
			usage()
			os.Exit(2)
		}
		qty := 1
		if len(args) > 4 {
			if n, err := strconv.Atoi(args[4]); err == nil {
				qty = n
			}
		}
		product, err := client.Products.Get(ctx, args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Could not load product:", err)
			os.Exit(1)
		}
		variant := product.FindVariant(args[2], args[3])
		if variant == nil {
			fmt.Fprintln(os.Stderr, "No such variant.")
			os.Exit(1)
		}
		if err := cart.AddItem(*product, *variant, qty); err != nil {
			fmt.Fprintln(os.Stderr, "Could not add:", err)
			os.Exit(1)
		}
		fmt.Printf("Added. Cart now holds %d article(s).\n", cart.ItemCount())
	case "list":
		for i, line := range cart.Items() {
			fmt.Printf("%2d. %-30s %s/%s x%d @ %s\n",
				i+1, line.Product.Name, line.Size, line.Color, line.Quantity,
				money.FormatPrice(cart.ItemPrice(line)))
		}
		fmt.Printf("Mode %s — subtotal %s\n", cart.OrderType(), money.FormatPrice(cart.Subtotal()))
	case "mode":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		mode := entity.OrderType(strings.ToUpper(args[1]))
		if err := cart.SetOrderType(mode); err != nil {
			fmt.Fprintln(os.Stderr, "Unknown mode.")
			os.Exit(1)
		}
		fmt.Printf("Pricing mode set to %s — subtotal %s\n", mode, money.FormatPrice(cart.Subtotal()))
	case "checkout":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		// Same gate the web checkout view sits behind.
		if decision := routes.Authorize(guard.PathCheckout); decision.Verdict != guard.Allow {
			fmt.Fprintln(os.Stderr, "Please log in before checking out.")
			os.Exit(1)
		}
		order, err := client.Orders.Create(ctx, api.CreateOrderRequest{
			Type:    cart.OrderType(),
			Items:   cart.ToOrderItems(),
			Address: strings.Join(args[1:], " "),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Checkout failed:", err)
			os.Exit(1)
		}
		cart.ClearCart()
		fmt.Printf("Order %s placed — total %s\n", order.Number, money.FormatPrice(order.Total))
	default:
		usage()
		os.Exit(2)
	}
}
