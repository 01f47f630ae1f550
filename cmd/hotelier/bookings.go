package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vangoframework/hotelier/internal/api"
	"github.com/vangoframework/hotelier/internal/table"
)

// bookingListColumns mirror the admin bookings table in plain text. Keys are
// the API's sort fields.
var bookingListColumns = table.MustDefineColumns(
	table.Column{Key: "bookingId", Header: "Booking", Sortable: true},
	table.Column{Key: "guestName", Header: "Guest", Sortable: true},
	table.Column{Key: "guestEmail", Header: "Email"},
	table.Column{Key: "roomNumber", Header: "Room", Sortable: true},
	table.Column{Key: "roomType", Header: "Type"},
	table.Column{Key: "checkIn", Header: "Check-in", Sortable: true},
	table.Column{Key: "checkOut", Header: "Check-out"},
	table.Column{Key: "totalAmount", Header: "Amount", Sortable: true, Render: func(r table.Row) any {
		v, ok := r.Get("totalAmount")
		if !ok {
			return nil
		}
		return fmt.Sprintf("%.2f", v)
	}},
	table.Column{Key: "status", Header: "Status", Sortable: true},
)

func listRows(bookings []api.Booking) []table.Row {
	rows := make([]table.Row, len(bookings))
	for i, b := range bookings {
		rows[i] = table.NewRow(string(b.ID), map[string]any{
			"bookingId":   b.Reference(),
			"guestName":   b.GuestName,
			"guestEmail":  b.GuestEmail,
			"roomNumber":  string(b.RoomNumber),
			"roomType":    b.RoomType,
			"checkIn":     b.CheckIn,
			"checkOut":    b.CheckOut,
			"totalAmount": b.TotalAmount,
			"status":      b.Status,
		})
	}
	return rows
}

type bookingsOptions struct {
	apiURL  string
	token   string
	status  string
	search  string
	sort    string
	dir     string
	row     string
	page    int
	size    int
	timeout time.Duration
	watch   time.Duration
}

func newBookingsCmd() *cobra.Command {
	// Flag defaults may come from .env, as for the server.
	_ = godotenv.Load()

	opts := bookingsOptions{}
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Print a page of bookings from the hotel API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBookings(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.apiURL, "api-url", envOr("API_URL", "http://localhost:5000"), "hotel API base URL")
	f.StringVar(&opts.token, "token", os.Getenv("API_TOKEN"), "staff or admin access token")
	f.StringVar(&opts.status, "status", "", "only bookings with this status")
	f.StringVarP(&opts.search, "search", "q", "", "free-text search")
	f.StringVar(&opts.sort, "sort", "", "sort column (bookingId, guestName, roomNumber, checkIn, totalAmount, status)")
	f.StringVar(&opts.dir, "dir", "asc", "sort direction (asc or desc)")
	f.StringVar(&opts.row, "row", "", "also print every field of the booking with this id")
	f.IntVar(&opts.page, "page", 1, "page number")
	f.IntVar(&opts.size, "size", table.DefaultPageSize, "rows per page")
	f.DurationVar(&opts.timeout, "timeout", 10*time.Second, "API request timeout")
	f.DurationVar(&opts.watch, "watch", 0, "re-fetch on this interval until interrupted")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runBookings(ctx context.Context, out io.Writer, opts bookingsOptions) error {
	client := api.New(opts.apiURL, opts.timeout).WithToken(opts.token)

	tbl := table.NewWithColumns(bookingListColumns,
		table.WithServerPaging(),
		table.WithQuery(table.Query{
			Page:     opts.page,
			PageSize: opts.size,
			Sort:     table.SortBy(opts.sort, table.ParseDirection(opts.dir)),
			Search:   opts.search,
		}),
		table.WithOnRowClick(func(row table.Row) {
			if err := renderBookingDetail(out, row); err != nil {
				slog.Error("failed to render booking", "error", err)
			}
		}),
	)

	refresher := table.NewRefresher(tbl, func(v table.View, err error) {
		if err != nil {
			slog.Error("failed to fetch bookings", "error", err)
			return
		}
		if err := renderBookings(out, v); err != nil {
			slog.Error("failed to render bookings", "error", err)
		}
	})
	defer refresher.Stop()

	fetch := func(ctx context.Context) ([]table.Row, int, error) {
		var q table.Query
		refresher.Do(func(t *table.Table) { q = t.Query() })

		list, err := client.ListBookings(ctx, api.BookingQuery{
			Status: opts.status,
			Search: q.Search,
			Page:   q.Page,
			Limit:  q.PageSize,
			Sort:   q.Sort.ColumnKey,
			Order:  q.Sort.Direction.String(),
		})
		if err != nil {
			return nil, 0, err
		}
		return listRows(list.Bookings), list.Total, nil
	}

	refresher.Refresh(ctx, fetch)
	refresher.Wait()
	if err := refresher.Err(); err != nil && opts.watch <= 0 {
		return err
	}

	if opts.row != "" {
		var found bool
		refresher.Do(func(t *table.Table) { found = t.ClickRow(opts.row) })
		if !found && opts.watch <= 0 {
			return fmt.Errorf("booking %q is not on this page", opts.row)
		}
	}
	if opts.watch <= 0 {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	ticker := time.NewTicker(opts.watch)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			refresher.Wait()
			return nil
		case <-ticker.C:
			refresher.Refresh(ctx, fetch)
		}
	}
}

// renderBookings prints a view as a terminal table.
func renderBookings(out io.Writer, v table.View) error {
	tw := tablewriter.NewWriter(out)

	headers := make([]any, len(v.Headers))
	for i, h := range v.Headers {
		title := h.Title
		switch h.Direction {
		case table.Asc:
			title += " ^"
		case table.Desc:
			title += " v"
		}
		headers[i] = title
	}
	tw.Header(headers...)

	for _, row := range v.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = c.Text()
		}
		if err := tw.Append(cells); err != nil {
			return err
		}
	}
	if err := tw.Render(); err != nil {
		return err
	}

	if v.Empty {
		_, err := fmt.Fprintln(out, "No bookings found.")
		return err
	}
	_, err := fmt.Fprintf(out, "Page %s of %s, %d bookings\n", strconv.Itoa(v.Page), strconv.Itoa(v.TotalPages), v.Total)
	return err
}

// renderBookingDetail prints every field of one booking row.
func renderBookingDetail(out io.Writer, row table.Row) error {
	tw := tablewriter.NewWriter(out)
	tw.Header("Field", "Value")
	for _, key := range slices.Sorted(maps.Keys(row.Fields)) {
		if err := tw.Append([]string{key, table.Cell{Value: row.Fields[key]}.Text()}); err != nil {
			return err
		}
	}
	return tw.Render()
}
