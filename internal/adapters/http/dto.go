package http

// TaskResponse is the JSON shape returned by GET /v1/tasks. Images are
// base64-encoded PNGs of the configured canvas size.
type TaskResponse struct {
	TaskID           string   `json:"task_id"`
	Domain           string   `json:"domain"`
	Difficulty       string   `json:"difficulty"`
	LayoutVariant    string   `json:"layout_variant"`
	NumShapes        int      `json:"num_shapes"`
	Cards            []string `json:"cards"`
	Prompt           string   `json:"prompt"`
	FirstImage       string   `json:"first_image"`
	FinalImage       string   `json:"final_image"`
	GroundTruthVideo string   `json:"ground_truth_video,omitempty"`
	Meta             MetaResp `json:"meta"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
