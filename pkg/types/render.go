package types

// OutputHTML is the KaTeX output dialect used by the installation check
const OutputHTML = "html"

// RenderOptions mirrors the option object accepted by KaTeX's renderToString.
// Field tags use the JavaScript option names so the struct can be handed to
// the library as-is.
type RenderOptions struct {
	Output       string `json:"output"`
	DisplayMode  bool   `json:"displayMode"`
	ThrowOnError bool   `json:"throwOnError"`
	Strict       bool   `json:"strict"`
	Trust        bool   `json:"trust"`
}

// RenderRequest is the payload passed to the render script
type RenderRequest struct {
	Expression string        `json:"expression"`
	Options    RenderOptions `json:"options"`
}
