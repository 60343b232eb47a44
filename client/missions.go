package client

import (
	"context"
	"net/http"

	"github.com/soukhub/soukhub-go/schema"
)

// ListAvailableMissions returns unassigned missions a courier may accept.
func (c *Client) ListAvailableMissions(ctx context.Context) ([]schema.Mission, error) {
	envelope, err := get[schema.MissionList](ctx, c, "/missions/available", "failed to list available missions")
	return envelope.Missions, err
}

// ListMyMissions returns the missions assigned to the logged-in courier.
func (c *Client) ListMyMissions(ctx context.Context) ([]schema.Mission, error) {
	envelope, err := get[schema.MissionList](ctx, c, "/missions/mine", "failed to list missions")
	return envelope.Missions, err
}

func (c *Client) GetMission(ctx context.Context, id schema.ID) (*schema.Mission, error) {
	mission, err := get[schema.Mission](ctx, c, "/missions/"+id.String(), "failed to load mission")
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// AcceptMission claims a mission for the logged-in courier. Whether the
// mission is still available is decided by the backend; a conflict surfaces
// as an *APIError.
func (c *Client) AcceptMission(ctx context.Context, id schema.ID) (*schema.Mission, error) {
	mission, err := do[schema.Mission](ctx, c, http.MethodPost, "/missions/"+id.String()+"/accept", nil, "failed to accept mission")
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// RefuseMission declines a mission offer.
func (c *Client) RefuseMission(ctx context.Context, id schema.ID) (*schema.Mission, error) {
	mission, err := do[schema.Mission](ctx, c, http.MethodPost, "/missions/"+id.String()+"/refuse", nil, "failed to refuse mission")
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// UpdateMissionStatus reports delivery progression (in_transit, delivered,
// failed). Transition legality is server-owned.
func (c *Client) UpdateMissionStatus(ctx context.Context, id schema.ID, status schema.MissionStatus) (*schema.Mission, error) {
	mission, err := do[schema.Mission](ctx, c, http.MethodPost, "/missions/"+id.String()+"/status",
		statusChange{Status: string(status)}, "failed to update mission status")
	if err != nil {
		return nil, err
	}
	return &mission, nil
}
