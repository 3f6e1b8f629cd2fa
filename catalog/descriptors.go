package catalog

import "gfxmanager/models"

const (
	selectOption  = "Select Option..."
	selectOptions = "Select Options..."
)

var (
	enabledDisabled = []string{selectOption, "Enabled", "Disabled"}
	enableDisable   = []string{selectOption, "Enable", "Disable"}
	splitEnable     = []string{selectOption, "Enable", "Enable (D3D9)", "Disable"}
	afLevels        = []string{selectOption, "x16", "x8", "x4", "x2", "x1"}
	clampOptions    = []string{selectOption, "Enabled", "Disabled"}
	vsyncLevels     = []string{selectOption, "1 Frame", "2 Frames", "Off"}
	frameLimits     = []string{selectOption, "30", "60", "75", "120", "144", "240"}
)

func header(text string) string {
	return "<h3>" + text + "</h3>"
}

// descriptors returns the settings table. Order defines the ids.
func descriptors() []Descriptor {
	return []Descriptor{
		// Anti-Aliasing: FXAA
		{
			ID: FXAAEnable, Key: models.KeyFXAAEnable, Group: AntiAliasing, Kind: Toggle,
			Label:      "Enable FXAA",
			Options:    enabledDisabled,
			HelpHeader: header("Fast Approximate Anti-Aliasing:"),
			HelpBody:   "<p>A cheap screen-space pass that smooths jagged edges by blurring high-contrast pixels.</p><p>Enabled - Add FXAA to the vkBasalt effect chain<br>Disabled - Leave FXAA out</p>",
		},
		{
			ID: FXAAQualitySubpixel, Key: models.KeyFXAAQualitySubpixel, Group: AntiAliasing,
			Label:      "FXAA Subpixel Quality",
			Options:    []string{selectOption, "1.00", "0.75", "0.50", "0.25", "0.00"},
			HelpHeader: header("FXAA Subpixel Quality:"),
			HelpBody:   "<p>Amount of sub-pixel aliasing removal.</p><p>1.00 - Softest<br>0.75 - Default<br>0.00 - Off</p>",
		},
		{
			ID: FXAAQualityEdge, Key: models.KeyFXAAQualityEdge, Group: AntiAliasing,
			Label:      "FXAA Edge Threshold",
			Options:    []string{selectOption, "Highest Quality", "High Quality", "Default", "Low Quality", "Lowest Quality"},
			HelpHeader: header("FXAA Edge Threshold:"),
			HelpBody:   "<p>Minimum local contrast required before an edge is processed.</p><p>Higher quality catches more edges at a small cost.</p>",
		},
		{
			ID: FXAAEdgeThreshold, Key: models.KeyFXAAEdgeThreshold, Group: AntiAliasing,
			Label:      "FXAA Edge Threshold Minimum",
			Options:    []string{selectOption, "Upper Limit", "High Quality", "Visible Limit", "Zero"},
			HelpHeader: header("FXAA Edge Threshold Minimum:"),
			HelpBody:   "<p>Skips processing of dark areas below this level.</p><p>Zero - Process every pixel</p>",
			Rule:       true,
		},

		// Anti-Aliasing: SMAA
		{
			ID: SMAAEnable, Key: models.KeySMAAEnable, Group: AntiAliasing, Kind: Toggle,
			Label:      "Enable SMAA",
			Options:    enabledDisabled,
			HelpHeader: header("Subpixel Morphological Anti-Aliasing:"),
			HelpBody:   "<p>Edge-detecting anti-aliasing with sharper results than FXAA.</p><p>Enabled - Add SMAA to the vkBasalt effect chain<br>Disabled - Leave SMAA out</p>",
		},
		{
			ID: SMAAEdgeDetection, Key: models.KeySMAAEdgeDetection, Group: AntiAliasing,
			Label:      "SMAA Edge Detection",
			Options:    []string{selectOption, "Luma", "Color"},
			HelpHeader: header("SMAA Edge Detection:"),
			HelpBody:   "<p>Luma - Detect edges from brightness<br>Color - Detect edges from colour, slower but more accurate</p>",
		},
		{
			ID: SMAAThreshold, Key: models.KeySMAAThreshold, Group: AntiAliasing,
			Label:      "SMAA Threshold",
			Options:    []string{selectOptions, "Highest Quality", "Quality", "Balanced", "Low Quality", "Lowest Quality"},
			HelpHeader: header("SMAA Threshold:"),
			HelpBody:   "<p>Edge detection sensitivity. Lower thresholds detect more edges.</p>",
		},
		{
			ID: SMAASearchSteps, Key: models.KeySMAASearchSteps, Group: AntiAliasing,
			Label:      "SMAA Max Search Steps",
			Options:    []string{selectOptions, "x32", "x16", "x8", "x4", "x2"},
			HelpHeader: header("SMAA Max Search Steps:"),
			HelpBody:   "<p>How far the pattern search runs along horizontal and vertical edges.</p>",
		},
		{
			ID: SMAASearchStepsDiagonal, Key: models.KeySMAASearchStepsDiagonal, Group: AntiAliasing,
			Label:      "SMAA Max Diagonal Search Steps",
			Options:    []string{selectOptions, "x16", "x8", "x4", "x2", "x0"},
			HelpHeader: header("SMAA Max Diagonal Search Steps:"),
			HelpBody:   "<p>How far the pattern search runs along diagonal edges.</p><p>x0 - Diagonal detection off</p>",
		},
		{
			ID: SMAACornerRounding, Key: models.KeySMAACornerRounding, Group: AntiAliasing,
			Label:      "SMAA Corner Rounding",
			Options:    []string{selectOptions, "100", "75", "50", "25", "0"},
			HelpHeader: header("SMAA Corner Rounding:"),
			HelpBody:   "<p>Percentage of sharp corners that are kept.</p><p>0 - Corners left untouched</p>",
		},

		// Anisotropic Filtering: AF
		{
			ID: AFEnable, Key: models.KeyAFEnable, Group: AnisotropicFiltering,
			Label:      "Enable Anisotropic Filtering",
			Options:    splitEnable,
			HelpHeader: header("Enabling Anisotropic Filtering:"),
			HelpBody:   "<p>Improves the clarity of textures seen at oblique angles.</p><p>Enable - D3D10/D3D11 games<br>Enable (D3D9) - D3D9 games<br>Disable - Use the game's own setting</p>",
		},
		{
			ID: AFLevel, Key: models.KeyAFLevel, Group: AnisotropicFiltering,
			Label:      "Anisotropic Filtering Level",
			Options:    afLevels,
			HelpHeader: header("Anisotropic Filtering Level:"),
			HelpBody:   "<p>Sample count used for D3D10/D3D11 texture filtering.</p>",
		},
		{
			ID: AFLevelD3D9, Key: models.KeyAFLevelD3D9, Group: AnisotropicFiltering,
			Label:      "Anisotropic Filtering Level (D3D9)",
			Options:    afLevels,
			HelpHeader: header("Anisotropic Filtering Level (D3D9):"),
			HelpBody:   "<p>Sample count used for D3D9 texture filtering.</p>",
			Rule:       true,
		},

		// Anisotropic Filtering: LOD bias
		{
			ID: LODEnable, Key: models.KeyLODEnable, Group: AnisotropicFiltering,
			Label:      "Enable LOD Bias",
			Options:    splitEnable,
			HelpHeader: header("Enabling LOD Bias:"),
			HelpBody:   "<p>Shifts which mipmap level textures are sampled from.</p><p>Enable - D3D10/D3D11 games<br>Enable (D3D9) - D3D9 games<br>Disable - Use the game's own setting</p>",
		},
		{
			ID: LODBias, Key: models.KeyLODBias, Group: AnisotropicFiltering,
			Label:      "LOD Bias",
			Options:    []string{selectOption, "-2.0", "-1.0", "0.0", "0.5", "1.0"},
			HelpHeader: header("LOD Bias:"),
			HelpBody:   "<p>Negative values sharpen textures and may shimmer. Positive values blur.</p>",
		},
		{
			ID: LODBiasD3D9, Key: models.KeyLODBiasD3D9, Group: AnisotropicFiltering,
			Label:      "LOD Bias (D3D9)",
			Options:    []string{selectOption, "-2", "-1", "0", "0.5", "1"},
			HelpHeader: header("LOD Bias (D3D9):"),
			HelpBody:   "<p>Negative values sharpen textures and may shimmer. Positive values blur.</p>",
		},
		{
			ID: ClampNegativeLOD, Key: models.KeyClampNegativeLOD, Group: AnisotropicFiltering,
			Label:      "Clamp Negative LOD Bias",
			Options:    clampOptions,
			HelpHeader: header("Clamp Negative LOD Bias:"),
			HelpBody:   "<p>Stops games from applying their own negative bias on top.</p>",
		},
		{
			ID: ClampNegativeLODD3D9, Key: models.KeyClampNegativeLODD3D9, Group: AnisotropicFiltering,
			Label:      "Clamp Negative LOD Bias (D3D9)",
			Options:    clampOptions,
			HelpHeader: header("Clamp Negative LOD Bias (D3D9):"),
			HelpBody:   "<p>Stops D3D9 games from applying their own negative bias on top.</p>",
		},

		// Sharpening: CAS
		{
			ID: CASEnable, Key: models.KeyCASEnable, Group: Sharpening, Kind: Toggle,
			Label:      "Enable CAS",
			Options:    enableDisable,
			HelpHeader: header("Contrast Adaptive Sharpening:"),
			HelpBody:   "<p>Sharpens detail while limiting halos around high-contrast edges.</p><p>Enable - Add CAS to the vkBasalt effect chain<br>Disable - Leave CAS out</p>",
		},
		{
			ID: CASLevel, Key: models.KeyCASLevel, Group: Sharpening,
			Label:      "CAS Sharpness",
			Options:    []string{selectOption, "1.00", "0.75", "0.50", "0.25", "0.00", "Off"},
			HelpHeader: header("CAS Sharpness:"),
			HelpBody:   "<p>Strength of the sharpening pass.</p><p>Off - Keep CAS out of the effect chain</p>",
			Rule:       true,
		},

		// Sharpening: DLS
		{
			ID: DLSEnable, Key: models.KeyDLSEnable, Group: Sharpening, Kind: Toggle,
			Label:      "Enable DLS",
			Options:    enableDisable,
			HelpHeader: header("Denoised Luma Sharpening:"),
			HelpBody:   "<p>Sharpens brightness only and suppresses the noise sharpening brings out.</p><p>Enable - Add DLS to the vkBasalt effect chain<br>Disable - Leave DLS out</p>",
		},
		{
			ID: DLSSharpness, Key: models.KeyDLSSharpness, Group: Sharpening,
			Label:      "DLS Sharpness",
			Options:    []string{selectOption, "1.00", "0.75", "0.50", "0.25", "0.00"},
			HelpHeader: header("DLS Sharpness:"),
			HelpBody:   "<p>Strength of the sharpening pass.</p>",
		},
		{
			ID: DLSDenoise, Key: models.KeyDLSDenoise, Group: Sharpening,
			Label:      "DLS Denoise",
			Options:    []string{selectOption, "1.00", "0.75", "0.50", "0.25"},
			HelpHeader: header("DLS Denoise:"),
			HelpBody:   "<p>How strongly film grain and noise are ignored while sharpening.</p>",
		},

		// VSync
		{
			ID: VSyncEnable, Key: models.KeyVSyncEnable, Group: VSync,
			Label:      "Enable VSync",
			Options:    splitEnable,
			HelpHeader: header("Enabling VSync:"),
			HelpBody:   "<p>Overrides the presentation interval to prevent tearing.</p><p>Enable - DXGI games<br>Enable (D3D9) - D3D9 games<br>Disable - Use the game's own setting</p>",
		},
		{
			ID: VSyncLevel, Key: models.KeyVSyncLevel, Group: VSync,
			Label:      "VSync Interval",
			Options:    vsyncLevels,
			HelpHeader: header("VSync Interval:"),
			HelpBody:   "<p>Number of vertical blanks to wait before presenting.</p><p>Off - Never wait</p>",
		},
		{
			ID: VSyncLevelD3D9, Key: models.KeyVSyncLevelD3D9, Group: VSync,
			Label:      "VSync Interval (D3D9)",
			Options:    vsyncLevels,
			HelpHeader: header("VSync Interval (D3D9):"),
			HelpBody:   "<p>Number of vertical blanks to wait before presenting.</p><p>Off - Never wait</p>",
			Rule:       true,
		},
		{
			ID: FrameLimitEnable, Key: models.KeyFrameLimitEnable, Group: VSync,
			Label:      "Enable Frame Limit",
			Options:    splitEnable,
			HelpHeader: header("Enabling Frame Limit:"),
			HelpBody:   "<p>Caps the frame rate the game may present at.</p><p>Enable - DXGI games<br>Enable (D3D9) - D3D9 games<br>Disable - No cap</p>",
		},
		{
			ID: FrameLimitLevel, Key: models.KeyFrameLimitLevel, Group: VSync,
			Label:      "Frame Limit",
			Options:    frameLimits,
			HelpHeader: header("Frame Limit:"),
			HelpBody:   "<p>Maximum frames per second.</p>",
		},
		{
			ID: FrameLimitLevelD3D9, Key: models.KeyFrameLimitLevelD3D9, Group: VSync,
			Label:      "Frame Limit (D3D9)",
			Options:    frameLimits,
			HelpHeader: header("Frame Limit (D3D9):"),
			HelpBody:   "<p>Maximum frames per second.</p>",
		},

		// Misc
		{
			ID: HDREnable, Key: models.KeyHDREnable, Group: Misc, Kind: Toggle,
			Label:      "Enable HDR",
			Options:    enabledDisabled,
			HelpHeader: header("High Dynamic Range:"),
			HelpBody:   "<p>Exposes HDR colour spaces to the game. Needs an HDR capable compositor.</p>",
			Rule:       true,
		},
		{
			ID: D3DLevel, Key: models.KeyD3DLevel, Group: Misc,
			Label: "Max D3D Feature Level",
			Options: []string{selectOption,
				"Direct X 9.1", "Direct X 9.2", "Direct X 9.3",
				"Direct X 10.0", "Direct X 10.1",
				"Direct X 11.0", "Direct X 11.1",
				"Direct X 12.0", "Direct X 12.1",
			},
			HelpHeader: header("Max D3D Feature Level:"),
			HelpBody:   "<p>Highest Direct3D feature level reported to D3D11 games.</p><p>Lower it when a game picks a broken high-end path.</p>",
		},
	}
}
