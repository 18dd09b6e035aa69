// Command foodies is the terminal client for the food-ordering service. It
// talks to the backend API when reachable and falls back to the bundled
// local dataset when it is not, so every command works offline.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"foodies/config"
	"foodies/internal/domain/entity"
	"foodies/internal/domain/service"
	"foodies/internal/infra/api"
	"foodies/internal/infra/auth"
	"foodies/internal/infra/cache"
	"foodies/internal/infra/localstore"
	logs "foodies/internal/infra/log"
	"foodies/internal/infra/notify"
	"foodies/internal/usecase"
	"foodies/internal/usecase/impl"
)

const usageText = `Usage: foodies <command> [flags]

Commands:
  register        create an account and sign in
  login           sign in with email and password
  logout          sign out
  whoami          show the signed-in user
  menu            list the food catalog
  food            show one food item
  food-create     add a catalog entry (admin)
  food-delete     remove a catalog entry (admin)
  cart            show the cart
  cart-add        add one unit of a food item
  cart-remove     remove one unit of a food item
  cart-clear      empty the cart
  checkout        place an order from the cart
  orders          list your orders
  orders-all      list every order (admin)
  order-status    change an order's status (admin)
  order-delete    delete an order (admin)
  verify-payment  verify a payment signature
`

type app struct {
	store   *localstore.Store
	authUC  usecase.AuthUsecase
	catalog usecase.CatalogUsecase
	cart    usecase.CartUsecase
	orders  usecase.OrderUsecase
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	store, err := localstore.New(ctx, cfg.Store.URL)
	if err != nil {
		return nil, err
	}

	catalog := localstore.NewCatalog()
	hasher := auth.NewBcryptHasher(cfg)
	client := api.NewClient(cfg, store, logger)
	queries := cache.New()
	notifier := notify.NewTerminalNotifier(os.Stdout, os.Stderr)

	cartRemote := api.NewCartGateway(client)
	cartLocal := localstore.NewCartGateway(store, catalog, cfg.Store.Latency)

	return &app{
		store: store,
		authUC: impl.NewAuthService(
			api.NewAuthGateway(client),
			localstore.NewAuthGateway(store, hasher, cfg.Store.Latency),
			store, queries, notifier, logger,
		),
		catalog: impl.NewCatalogService(cfg,
			api.NewCatalogGateway(client),
			localstore.NewCatalogGateway(catalog, cfg.Store.Latency),
			queries, notifier, logger,
		),
		cart: impl.NewCartService(cfg, cartRemote, cartLocal, queries, notifier, logger),
		orders: impl.NewOrderService(cfg,
			api.NewOrderGateway(client),
			localstore.NewOrderGateway(store, catalog, cfg.Store.Latency),
			cartRemote, cartLocal,
			queries, notifier, logger,
		),
	}, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "foodies:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Print(usageText)
		return nil
	}

	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.store.Close()

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		return a.authUC.Logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "menu":
		return a.menu(ctx)
	case "food":
		return a.food(ctx, args[1:])
	case "food-create":
		return a.foodCreate(ctx, args[1:])
	case "food-delete":
		return a.foodDelete(ctx, args[1:])
	case "cart":
		return a.showCart(ctx)
	case "cart-add":
		return a.cartAdd(ctx, args[1:])
	case "cart-remove":
		return a.cartRemove(ctx, args[1:])
	case "cart-clear":
		return a.cart.ClearCart(ctx)
	case "checkout":
		return a.checkout(ctx, args[1:])
	case "orders":
		return a.listOrders(ctx, false)
	case "orders-all":
		return a.listOrders(ctx, true)
	case "order-status":
		return a.orderStatus(ctx, args[1:])
	case "order-delete":
		return a.orderDelete(ctx, args[1:])
	case "verify-payment":
		return a.verifyPayment(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return nil
	default:
		return fmt.Errorf("unknown command %q, run 'foodies help'", args[0])
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	mobile := fs.String("mobile", "", "phone number")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.authUC.Register(ctx, service.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Mobile:   *mobile,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.authUC.Login(ctx, service.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Printf("signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	user, ok := a.authUC.CurrentUser(ctx)
	if !ok {
		fmt.Println("not signed in")
		return nil
	}

	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

func (a *app) menu(ctx context.Context) error {
	foods, err := a.catalog.ListFoods(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
	for _, food := range foods {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n", food.ID, food.Name, food.Category, food.Price)
	}
	return w.Flush()
}

func (a *app) food(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: foodies food <id>")
	}

	food, err := a.catalog.GetFood(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s (%s) %.2f\n", food.ID, food.Name, food.Category, food.Price)
	if food.Description != "" {
		fmt.Println(food.Description)
	}
	return nil
}

func (a *app) foodCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("food-create", flag.ExitOnError)
	name := fs.String("name", "", "item name")
	category := fs.String("category", "", "item category")
	description := fs.String("description", "", "item description")
	imageURL := fs.String("image", "", "item image URL")
	price := fs.Float64("price", 0, "unit price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	food, err := a.catalog.CreateFood(ctx, service.CreateFoodRequest{
		Name:        *name,
		Description: *description,
		Category:    *category,
		Price:       *price,
		ImageURL:    *imageURL,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created %s (%s)\n", food.Name, food.ID)
	return nil
}

func (a *app) foodDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: foodies food-delete <id>")
	}

	return a.catalog.DeleteFood(ctx, args[0])
}

func (a *app) showCart(ctx context.Context) error {
	cart, err := a.cart.GetCart(ctx)
	if err != nil {
		return err
	}

	if len(cart.Items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE")
	for _, item := range cart.Items {
		name := item.FoodID
		if item.Food != nil {
			name = item.Food.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\n", item.FoodID, name, item.Quantity, item.Price)
	}
	fmt.Fprintf(w, "\ttotal\t\t%.2f\n", cart.TotalAmount)
	return w.Flush()
}

func (a *app) cartAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: foodies cart-add <food-id>")
	}

	_, err := a.cart.AddToCart(ctx, args[0])
	return err
}

func (a *app) cartRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: foodies cart-remove <food-id>")
	}

	_, err := a.cart.RemoveFromCart(ctx, args[0])
	return err
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	address := fs.String("address", "", "delivery address")
	email := fs.String("email", "", "contact email")
	phone := fs.String("phone", "", "contact phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	order, err := a.orders.Checkout(ctx, usecase.CheckoutRequest{
		UserAddress: *address,
		Email:       *email,
		PhoneNumber: *phone,
	})
	if err != nil {
		return err
	}

	fmt.Printf("order %s placed, amount %.2f\n", order.ID, order.Amount)
	return nil
}

func (a *app) listOrders(ctx context.Context, all bool) error {
	var (
		orders []entity.Order
		err    error
	)
	if all {
		orders, err = a.orders.ListAllOrders(ctx)
	} else {
		orders, err = a.orders.ListMyOrders(ctx)
	}
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		fmt.Println("no orders")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tAMOUNT\tPLACED")
	for _, order := range orders {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", order.ID, order.Status, order.Amount, order.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (a *app) orderStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: foodies order-status <order-id> <status>")
	}

	status := entity.OrderStatus(strings.Join(args[1:], " "))
	_, err := a.orders.UpdateOrderStatus(ctx, args[0], status)
	return err
}

func (a *app) orderDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: foodies order-delete <order-id>")
	}

	return a.orders.DeleteOrder(ctx, args[0])
}

func (a *app) verifyPayment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify-payment", flag.ExitOnError)
	orderID := fs.String("order", "", "payment provider order id")
	paymentID := fs.String("payment", "", "payment provider payment id")
	signature := fs.String("signature", "", "payment signature")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.orders.VerifyPayment(ctx, service.PaymentVerification{
		OrderID:   *orderID,
		PaymentID: *paymentID,
		Signature: *signature,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Message)
	return nil
}
