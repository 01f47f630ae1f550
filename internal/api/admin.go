package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vangoframework/hotelier/internal/domain"
)

// Rooms lists every room.
func (c *Client) Rooms(ctx context.Context) ([]Room, error) {
	var rooms []Room
	if err := c.do(ctx, "rooms", http.MethodGet, "/admin/rooms", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// UpdateRoomStatus changes a room's housekeeping status.
func (c *Client) UpdateRoomStatus(ctx context.Context, id string, status domain.RoomStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, "update_room_status", http.MethodPut, "/admin/rooms/"+url.PathEscape(id)+"/status", nil, body, nil)
}

// Users lists every account.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, "users", http.MethodGet, "/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole changes a user's role.
func (c *Client) UpdateUserRole(ctx context.Context, id, role string) error {
	body := map[string]string{"role": role}
	return c.do(ctx, "update_user_role", http.MethodPut, "/admin/users/"+url.PathEscape(id)+"/role", nil, body, nil)
}

// DashboardStats returns the headline dashboard figures.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, "dashboard_stats", http.MethodGet, "/admin/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RevenueStats returns revenue per period ("daily", "weekly", "monthly").
func (c *Client) RevenueStats(ctx context.Context, period string) ([]RevenuePoint, error) {
	var q url.Values
	if period != "" {
		q = url.Values{"period": {period}}
	}
	var points []RevenuePoint
	if err := c.do(ctx, "revenue_stats", http.MethodGet, "/admin/stats/revenue", q, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// OccupancyRates returns occupancy per room type.
func (c *Client) OccupancyRates(ctx context.Context) ([]OccupancyPoint, error) {
	var points []OccupancyPoint
	if err := c.do(ctx, "occupancy_rates", http.MethodGet, "/admin/stats/occupancy", nil, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}
