package dto

// Exactly one of Grid (raw grid file text) or GridName must be set.
type RouteRequest struct {
	Grid      string `json:"grid"`
	GridName  string `json:"grid_name"`
	MaxPoints int    `json:"max_points"`
}

type CoordinateResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type PointResponse struct {
	Label string             `json:"label"`
	Coord CoordinateResponse `json:"coord"`
}

type TraceEntryResponse struct {
	Route string `json:"route"`
	Cost  int    `json:"cost"`
}

type RouteResponse struct {
	Origin    CoordinateResponse   `json:"origin"`
	Points    []PointResponse      `json:"points"`
	Trace     []TraceEntryResponse `json:"trace"`
	BestRoute []string             `json:"best_route"`
	BestCost  int                  `json:"best_cost"`
	Warnings  []string             `json:"warnings"`
}
