package api

// RenderStep is one entry of the scripted rendering sequence. The browser
// plays the sequence back on a timer; nothing on the server renders anything.
type RenderStep struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
	DelayMs int    `json:"delay_ms"`
}

// RenderScript returns the fixed progress sequence shown while a "render"
// plays out in the UI.
func RenderScript() []RenderStep {
	return []RenderStep{
		{Label: "Probing source clips", Percent: 8, DelayMs: 400},
		{Label: "Normalizing color profiles", Percent: 21, DelayMs: 650},
		{Label: "Cutting scenes to plan", Percent: 43, DelayMs: 800},
		{Label: "Applying transitions", Percent: 58, DelayMs: 700},
		{Label: "Balancing the soundtrack", Percent: 74, DelayMs: 750},
		{Label: "Stamping watermark", Percent: 87, DelayMs: 500},
		{Label: "Encoding master file", Percent: 97, DelayMs: 900},
		{Label: "Done", Percent: 100, DelayMs: 300},
	}
}
