package models

// Persisted keys of a settings record, in document order
const (
	KeyFXAAEnable              = "fxaa_enable"
	KeyFXAAQualitySubpixel     = "fxaa_quality_subpixel"
	KeyFXAAQualityEdge         = "fxaa_quality_edge"
	KeyFXAAEdgeThreshold       = "fxaa_edge_threshold"
	KeySMAAEnable              = "smaa_enable"
	KeySMAAEdgeDetection       = "smaa_edge_detection"
	KeySMAAThreshold           = "smaa_threshold"
	KeySMAASearchSteps         = "smaa_search_steps"
	KeySMAASearchStepsDiagonal = "smaa_search_steps_diagonal"
	KeySMAACornerRounding      = "smaa_corner_rounding"
	KeyAFEnable                = "af_enable"
	KeyAFLevel                 = "af_level"
	KeyAFLevelD3D9             = "af_level_d3d9"
	KeyLODEnable               = "lod_enable"
	KeyLODBias                 = "lod_bias"
	KeyLODBiasD3D9             = "lod_bias_d3d9"
	KeyClampNegativeLOD        = "clamp_negative_lod"
	KeyClampNegativeLODD3D9    = "clamp_negative_lod_d3d9"
	KeyCASEnable               = "cas_enable"
	KeyCASLevel                = "cas_level"
	KeyDLSEnable               = "dls_enable"
	KeyDLSSharpness            = "dls_sharpness"
	KeyDLSDenoise              = "dls_denoise"
	KeyVSyncEnable             = "vsync_enable"
	KeyVSyncLevel              = "vsync_level"
	KeyVSyncLevelD3D9          = "vsync_level_d3d9"
	KeyFrameLimitEnable        = "frame_limit_enable"
	KeyFrameLimitLevel         = "frame_limit_level"
	KeyFrameLimitLevelD3D9     = "frame_limit_level_d3d9"
	KeyHDREnable               = "hdr_enable"
	KeyD3DLevel                = "d3d_level"
)

// SettingKeys lists every setting key in document order
var SettingKeys = []string{
	KeyFXAAEnable, KeyFXAAQualitySubpixel, KeyFXAAQualityEdge, KeyFXAAEdgeThreshold,
	KeySMAAEnable, KeySMAAEdgeDetection, KeySMAAThreshold, KeySMAASearchSteps,
	KeySMAASearchStepsDiagonal, KeySMAACornerRounding,
	KeyAFEnable, KeyAFLevel, KeyAFLevelD3D9,
	KeyLODEnable, KeyLODBias, KeyLODBiasD3D9, KeyClampNegativeLOD, KeyClampNegativeLODD3D9,
	KeyCASEnable, KeyCASLevel,
	KeyDLSEnable, KeyDLSSharpness, KeyDLSDenoise,
	KeyVSyncEnable, KeyVSyncLevel, KeyVSyncLevelD3D9,
	KeyFrameLimitEnable, KeyFrameLimitLevel, KeyFrameLimitLevelD3D9,
	KeyHDREnable, KeyD3DLevel,
}

// SettingsRecord holds the resolved graphics settings of one application.
// Field order matches the on-disk key order.
type SettingsRecord struct {
	SettingsSet bool `json:"settings_set" yaml:"settings_set"`

	FXAAEnable              Value `json:"fxaa_enable" yaml:"fxaa_enable"`
	FXAAQualitySubpixel     Value `json:"fxaa_quality_subpixel" yaml:"fxaa_quality_subpixel"`
	FXAAQualityEdge         Value `json:"fxaa_quality_edge" yaml:"fxaa_quality_edge"`
	FXAAEdgeThreshold       Value `json:"fxaa_edge_threshold" yaml:"fxaa_edge_threshold"`
	SMAAEnable              Value `json:"smaa_enable" yaml:"smaa_enable"`
	SMAAEdgeDetection       Value `json:"smaa_edge_detection" yaml:"smaa_edge_detection"`
	SMAAThreshold           Value `json:"smaa_threshold" yaml:"smaa_threshold"`
	SMAASearchSteps         Value `json:"smaa_search_steps" yaml:"smaa_search_steps"`
	SMAASearchStepsDiagonal Value `json:"smaa_search_steps_diagonal" yaml:"smaa_search_steps_diagonal"`
	SMAACornerRounding      Value `json:"smaa_corner_rounding" yaml:"smaa_corner_rounding"`
	AFEnable                Value `json:"af_enable" yaml:"af_enable"`
	AFLevel                 Value `json:"af_level" yaml:"af_level"`
	AFLevelD3D9             Value `json:"af_level_d3d9" yaml:"af_level_d3d9"`
	LODEnable               Value `json:"lod_enable" yaml:"lod_enable"`
	LODBias                 Value `json:"lod_bias" yaml:"lod_bias"`
	LODBiasD3D9             Value `json:"lod_bias_d3d9" yaml:"lod_bias_d3d9"`
	ClampNegativeLOD        Value `json:"clamp_negative_lod" yaml:"clamp_negative_lod"`
	ClampNegativeLODD3D9    Value `json:"clamp_negative_lod_d3d9" yaml:"clamp_negative_lod_d3d9"`
	CASEnable               Value `json:"cas_enable" yaml:"cas_enable"`
	CASLevel                Value `json:"cas_level" yaml:"cas_level"`
	DLSEnable               Value `json:"dls_enable" yaml:"dls_enable"`
	DLSSharpness            Value `json:"dls_sharpness" yaml:"dls_sharpness"`
	DLSDenoise              Value `json:"dls_denoise" yaml:"dls_denoise"`
	VSyncEnable             Value `json:"vsync_enable" yaml:"vsync_enable"`
	VSyncLevel              Value `json:"vsync_level" yaml:"vsync_level"`
	VSyncLevelD3D9          Value `json:"vsync_level_d3d9" yaml:"vsync_level_d3d9"`
	FrameLimitEnable        Value `json:"frame_limit_enable" yaml:"frame_limit_enable"`
	FrameLimitLevel         Value `json:"frame_limit_level" yaml:"frame_limit_level"`
	FrameLimitLevelD3D9     Value `json:"frame_limit_level_d3d9" yaml:"frame_limit_level_d3d9"`
	HDREnable               Value `json:"hdr_enable" yaml:"hdr_enable"`
	D3DLevel                Value `json:"d3d_level" yaml:"d3d_level"`
}

// NewSettingsRecord returns a record with every setting null and settings_set false
func NewSettingsRecord() SettingsRecord {
	return SettingsRecord{}
}

// fields maps each key to the matching field of r
func (r *SettingsRecord) fields() map[string]*Value {
	return map[string]*Value{
		KeyFXAAEnable:              &r.FXAAEnable,
		KeyFXAAQualitySubpixel:     &r.FXAAQualitySubpixel,
		KeyFXAAQualityEdge:         &r.FXAAQualityEdge,
		KeyFXAAEdgeThreshold:       &r.FXAAEdgeThreshold,
		KeySMAAEnable:              &r.SMAAEnable,
		KeySMAAEdgeDetection:       &r.SMAAEdgeDetection,
		KeySMAAThreshold:           &r.SMAAThreshold,
		KeySMAASearchSteps:         &r.SMAASearchSteps,
		KeySMAASearchStepsDiagonal: &r.SMAASearchStepsDiagonal,
		KeySMAACornerRounding:      &r.SMAACornerRounding,
		KeyAFEnable:                &r.AFEnable,
		KeyAFLevel:                 &r.AFLevel,
		KeyAFLevelD3D9:             &r.AFLevelD3D9,
		KeyLODEnable:               &r.LODEnable,
		KeyLODBias:                 &r.LODBias,
		KeyLODBiasD3D9:             &r.LODBiasD3D9,
		KeyClampNegativeLOD:        &r.ClampNegativeLOD,
		KeyClampNegativeLODD3D9:    &r.ClampNegativeLODD3D9,
		KeyCASEnable:               &r.CASEnable,
		KeyCASLevel:                &r.CASLevel,
		KeyDLSEnable:               &r.DLSEnable,
		KeyDLSSharpness:            &r.DLSSharpness,
		KeyDLSDenoise:              &r.DLSDenoise,
		KeyVSyncEnable:             &r.VSyncEnable,
		KeyVSyncLevel:              &r.VSyncLevel,
		KeyVSyncLevelD3D9:          &r.VSyncLevelD3D9,
		KeyFrameLimitEnable:        &r.FrameLimitEnable,
		KeyFrameLimitLevel:         &r.FrameLimitLevel,
		KeyFrameLimitLevelD3D9:     &r.FrameLimitLevelD3D9,
		KeyHDREnable:               &r.HDREnable,
		KeyD3DLevel:                &r.D3DLevel,
	}
}

// Get returns the value stored under key, or null for an unknown key
func (r SettingsRecord) Get(key string) Value {
	if p, ok := r.fields()[key]; ok {
		return *p
	}
	return Null()
}

// Set stores v under key and reports whether the key exists
func (r *SettingsRecord) Set(key string, v Value) bool {
	p, ok := r.fields()[key]
	if !ok {
		return false
	}
	*p = v
	return true
}

// IsEmpty reports whether every setting is null
func (r SettingsRecord) IsEmpty() bool {
	for _, key := range SettingKeys {
		if !r.Get(key).IsNull() {
			return false
		}
	}
	return true
}
