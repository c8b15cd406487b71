package predict

// Result is the prediction service's success payload. Probability, when
// present, is the model's estimate of the adverse outcome class. The endpoint
// documents it as constrained to [0,1], but consumers should treat the value
// as untrusted and re-clamp before display.
type Result struct {
	Prediction  string   `json:"prediction"`
	Probability *float64 `json:"probability"`
	RawClass    *int     `json:"raw_pred,omitempty"`
}

// HealthStatus is the service's liveness payload.
type HealthStatus struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}
