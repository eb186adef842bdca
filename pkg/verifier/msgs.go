package verifier

// Console messages
const (
	MsgLoaded     = "✓ KaTeX loaded successfully"
	MsgRenderOK   = "✓ KaTeX rendering test passed"
	MsgReady      = "✓ KaTeX is ready to use as the tex_renderer"
	MsgNotFound   = "✗ KaTeX not found: %s"
	MsgRenderFail = "✗ KaTeX rendering test failed"
	MsgHintGlobal = "  Install globally: npm install -g %s"
	MsgHintLocal  = "  Or locally:       npm install %s"
)

// Failure reasons recorded on the result
const (
	MsgNoOutput   = "render produced no output"
	MsgNoMarker   = "render output does not contain %q"
	MsgNilLibrary = "loader returned no library"
)
