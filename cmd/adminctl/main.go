package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/bipulsingh126/biziwit-admin/gateway"
	"github.com/bipulsingh126/biziwit-admin/internal/config"
	"github.com/bipulsingh126/biziwit-admin/model"
	"github.com/bipulsingh126/biziwit-admin/session"
)

// Base URL can be overridden with ADMIN_API_URL or --server.
func main() {
	cmd := flag.String("cmd", "me", "Command: login|logout|me|users|reports|inquiries|trending|export-reports|export-inquiries")
	email := flag.String("email", "", "Email (for login)")
	password := flag.String("password", "", "Password (for login)")
	q := flag.String("q", "", "Free-text search")
	status := flag.String("status", "", "Status filter")
	out := flag.String("out", "", "Output file for exports (default stdout)")
	serverFlag := flag.String("server", "", "Override backend base URL")
	verbose := flag.Bool("v", false, "Verbose request logging")
	flag.Parse()

	if err := run(*cmd, flags{
		email:    *email,
		password: *password,
		q:        *q,
		status:   *status,
		out:      *out,
		server:   *serverFlag,
		verbose:  *verbose,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type flags struct {
	email    string
	password string
	q        string
	status   string
	out      string
	server   string
	verbose  bool
}

func run(cmd string, f flags) error {
	c := config.New()

	baseURL := c.GetBaseURL()
	if f.server != "" {
		baseURL = strings.TrimRight(f.server, "/")
	}

	store, err := session.NewFileStore(c.GetConfigDir())
	if err != nil {
		return err
	}
	sess, err := session.New(store)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if f.verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	client, err := gateway.New(baseURL, sess,
		gateway.WithHTTPClient(&http.Client{Timeout: time.Duration(c.GetHTTPTimeoutSeconds()) * time.Second}),
		gateway.WithLogger(logger),
		gateway.WithOnSessionExpired(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'adminctl -cmd login' to authenticate again.")
		}),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch cmd {
	case "login":
		return login(ctx, client, f.email, f.password)
	case "logout":
		return client.Auth().Logout(ctx)
	case "me":
		return me(ctx, client)
	case "users":
		return listUsers(ctx, client, f.q, f.status)
	case "reports":
		return listReports(ctx, client, f.q, f.status)
	case "inquiries":
		return listInquiries(ctx, client, f.q, f.status)
	case "trending":
		return trending(ctx, client)
	case "export-reports":
		return exportReports(ctx, client, f.out)
	case "export-inquiries":
		return exportInquiries(ctx, client, f.out)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func login(ctx context.Context, client *gateway.Client, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("--email and --password are required for login")
	}
	displayBanner()
	resp, err := client.Auth().Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
	return nil
}

func me(ctx context.Context, client *gateway.Client) error {
	user, err := client.Auth().Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

func listUsers(ctx context.Context, client *gateway.Client, q, status string) error {
	users, err := client.Users().List(ctx, gateway.UserListQuery{Q: q, Status: status})
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Printf("%-26s %-30s %-10s %s\n", u.ID, u.Email, u.Role, u.Name)
	}
	fmt.Printf("%d user(s)\n", len(users))
	return nil
}

func listReports(ctx context.Context, client *gateway.Client, q, status string) error {
	page, err := client.Reports().List(ctx, gateway.ReportListQuery{Q: q, Status: status})
	if err != nil {
		return err
	}
	for _, r := range page.Items {
		fmt.Printf("%-26s %-10s %s\n", r.ID, model.StatusOrDraft(r.Status), r.Title)
	}
	fmt.Printf("%d report(s)\n", len(page.Items))
	return nil
}

func listInquiries(ctx context.Context, client *gateway.Client, q, status string) error {
	inquiries, err := client.Inquiries().List(ctx, gateway.InquiryListQuery{Q: q, Status: status})
	if err != nil {
		return err
	}
	for _, inq := range inquiries {
		fmt.Printf("%-26s %-24s %-12s %s\n", inq.ID, inq.Email, inq.Status, inq.Subject)
	}
	fmt.Printf("%d inquiry(ies)\n", len(inquiries))
	return nil
}

func trending(ctx context.Context, client *gateway.Client) error {
	categories, err := client.Categories().Trending(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println("No trending categories.")
		return nil
	}
	for _, c := range categories {
		fmt.Printf("%-26s %s\n", c.ID, c.Name)
	}
	return nil
}

func exportReports(ctx context.Context, client *gateway.Client, out string) error {
	body, _, err := client.Reports().Export(ctx, gateway.ReportListQuery{})
	if err != nil {
		return err
	}
	defer body.Close() //nolint:errcheck
	return writeExport(body, out)
}

func exportInquiries(ctx context.Context, client *gateway.Client, out string) error {
	body, err := client.Inquiries().ExportCSV(ctx, gateway.InquiryListQuery{})
	if err != nil {
		return err
	}
	defer body.Close() //nolint:errcheck
	return writeExport(body, out)
}

func writeExport(body io.Reader, out string) error {
	dest := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
		dest = f
	}
	_, err := io.Copy(dest, body)
	return err
}

func displayBanner() {
	myFigure := figure.NewFigure("adminctl", "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
