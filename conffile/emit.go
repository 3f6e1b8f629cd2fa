// Package conffile renders settings records into dxvk.conf and vkBasalt.conf.
package conffile

import (
	"bytes"
	"fmt"
	"strings"

	"gfxmanager/models"
)

// File names written next to the executable
const (
	DXVKFileName     = "dxvk.conf"
	VkBasaltFileName = "vkBasalt.conf"
)

const header = "# Generated by gfxmanager. Manual edits are replaced on the next save.\n"

// Values of the split enable selectors
const (
	modeEnable     = "Enable"
	modeEnableD3D9 = "Enable (D3D9)"
)

var (
	vsyncIntervals = map[string]string{
		"1 Frame":  "1",
		"2 Frames": "2",
		"Off":      "0",
	}

	featureLevels = map[string]string{
		"Direct X 9.1":  "9_1",
		"Direct X 9.2":  "9_2",
		"Direct X 9.3":  "9_3",
		"Direct X 10.0": "10_0",
		"Direct X 10.1": "10_1",
		"Direct X 11.0": "11_0",
		"Direct X 11.1": "11_1",
		"Direct X 12.0": "12_0",
		"Direct X 12.1": "12_1",
	}

	toggles = map[string]string{
		"Enabled":  "True",
		"Disabled": "False",
	}

	fxaaEdgeThresholds = map[string]string{
		"Highest Quality": "0.063",
		"High Quality":    "0.125",
		"Default":         "0.166",
		"Low Quality":     "0.250",
		"Lowest Quality":  "0.333",
	}

	fxaaEdgeThresholdMins = map[string]string{
		"Upper Limit":   "0.0833",
		"High Quality":  "0.0625",
		"Visible Limit": "0.0312",
		"Zero":          "0.0",
	}

	smaaEdgeDetections = map[string]string{
		"Luma":  "luma",
		"Color": "color",
	}

	smaaThresholds = map[string]string{
		"Highest Quality": "0.05",
		"Quality":         "0.10",
		"Balanced":        "0.25",
		"Low Quality":     "0.40",
		"Lowest Quality":  "0.50",
	}

	fractions = map[string]string{
		"1.00": "1.00",
		"0.75": "0.75",
		"0.50": "0.50",
		"0.25": "0.25",
		"0.00": "0.00",
	}

	lodBiases = map[string]string{
		"-2.0": "-2.0", "-1.0": "-1.0", "0.0": "0.0", "0.5": "0.5", "1.0": "1.0",
		"-2": "-2.0", "-1": "-1.0", "0": "0.0", "1": "1.0",
	}

	frameRates = map[string]string{
		"30": "30", "60": "60", "75": "75", "120": "120", "144": "144", "240": "240",
	}
)

// lines collects key = value pairs in insertion order
type lines struct {
	buf bytes.Buffer
}

func (l *lines) set(key, value string) {
	fmt.Fprintf(&l.buf, "%s = %s\n", key, value)
}

// lookup writes key when v is a string known to table
func (l *lines) lookup(key string, v models.Value, table map[string]string) bool {
	s, ok := v.AsString()
	if !ok {
		return false
	}
	out, ok := table[s]
	if !ok {
		return false
	}
	l.set(key, out)
	return true
}

func (l *lines) bytes(section string) []byte {
	var out bytes.Buffer
	out.WriteString(header)
	if l.buf.Len() > 0 {
		out.WriteString("\n# " + section + "\n")
		out.Write(l.buf.Bytes())
	}
	return out.Bytes()
}

// mode returns the split selector text, or "" when unset or disabled
func mode(v models.Value) string {
	s, _ := v.AsString()
	if s == modeEnable || s == modeEnableD3D9 {
		return s
	}
	return ""
}

// enabled reports whether a toggle selector is on
func enabled(v models.Value) bool {
	b, ok := v.AsBool()
	return ok && b
}

// multiplier turns "x16" into "16"
func multiplier(v models.Value) (string, bool) {
	s, ok := v.AsString()
	if !ok || !strings.HasPrefix(s, "x") {
		return "", false
	}
	n := strings.TrimPrefix(s, "x")
	return n, isDigits(n)
}

// DXVK renders the dxvk.conf contents for rec
func DXVK(rec models.SettingsRecord) []byte {
	var l lines

	switch mode(rec.AFEnable) {
	case modeEnable:
		if n, ok := multiplier(rec.AFLevel); ok {
			l.set("d3d11.samplerAnisotropy", n)
		}
	case modeEnableD3D9:
		if n, ok := multiplier(rec.AFLevelD3D9); ok {
			l.set("d3d9.samplerAnisotropy", n)
		}
	}

	switch mode(rec.LODEnable) {
	case modeEnable:
		l.lookup("d3d11.samplerLodBias", rec.LODBias, lodBiases)
		l.lookup("d3d11.clampNegativeLodBias", rec.ClampNegativeLOD, toggles)
	case modeEnableD3D9:
		l.lookup("d3d9.samplerLodBias", rec.LODBiasD3D9, lodBiases)
		l.lookup("d3d9.clampNegativeLodBias", rec.ClampNegativeLODD3D9, toggles)
	}

	switch mode(rec.VSyncEnable) {
	case modeEnable:
		l.lookup("dxgi.syncInterval", rec.VSyncLevel, vsyncIntervals)
	case modeEnableD3D9:
		l.lookup("d3d9.presentInterval", rec.VSyncLevelD3D9, vsyncIntervals)
	}

	switch mode(rec.FrameLimitEnable) {
	case modeEnable:
		l.lookup("dxgi.maxFrameRate", rec.FrameLimitLevel, frameRates)
	case modeEnableD3D9:
		l.lookup("d3d9.maxFrameRate", rec.FrameLimitLevelD3D9, frameRates)
	}

	if b, ok := rec.HDREnable.AsBool(); ok {
		if b {
			l.set("dxgi.enableHDR", "True")
		} else {
			l.set("dxgi.enableHDR", "False")
		}
	}

	l.lookup("d3d11.maxFeatureLevel", rec.D3DLevel, featureLevels)

	return l.bytes("DXVK")
}

// VkBasalt renders the vkBasalt.conf contents for rec
func VkBasalt(rec models.SettingsRecord) []byte {
	var params lines
	var effects []string

	if enabled(rec.FXAAEnable) {
		effects = append(effects, "fxaa")
		params.lookup("fxaaQualitySubpix", rec.FXAAQualitySubpixel, fractions)
		params.lookup("fxaaQualityEdgeThreshold", rec.FXAAQualityEdge, fxaaEdgeThresholds)
		params.lookup("fxaaQualityEdgeThresholdMin", rec.FXAAEdgeThreshold, fxaaEdgeThresholdMins)
	}

	if enabled(rec.SMAAEnable) {
		effects = append(effects, "smaa")
		params.lookup("smaaEdgeDetection", rec.SMAAEdgeDetection, smaaEdgeDetections)
		params.lookup("smaaThreshold", rec.SMAAThreshold, smaaThresholds)
		if n, ok := multiplier(rec.SMAASearchSteps); ok {
			params.set("smaaMaxSearchSteps", n)
		}
		if n, ok := multiplier(rec.SMAASearchStepsDiagonal); ok {
			params.set("smaaMaxSearchStepsDiag", n)
		}
		if s, ok := rec.SMAACornerRounding.AsString(); ok && isDigits(s) {
			params.set("smaaCornerRounding", s)
		}
	}

	if enabled(rec.CASEnable) {
		if s, _ := rec.CASLevel.AsString(); s != "Off" {
			effects = append(effects, "cas")
			params.lookup("casSharpness", rec.CASLevel, fractions)
		}
	}

	if enabled(rec.DLSEnable) {
		effects = append(effects, "dls")
		params.lookup("dlsSharpness", rec.DLSSharpness, fractions)
		params.lookup("dlsDenoise", rec.DLSDenoise, fractions)
	}

	var l lines
	if len(effects) > 0 {
		l.set("effects", strings.Join(effects, ":"))
		l.buf.Write(params.buf.Bytes())
		l.set("enableOnLaunch", "True")
	}
	return l.bytes("vkBasalt")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
