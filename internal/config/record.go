package config

// VideoCodec is the container/codec used by the AVI and GIF recorders.
type VideoCodec string

// Recording codecs.
const (
	CodecNone VideoCodec = "None"
	CodecZmbv VideoCodec = "ZMBV"
	CodecCscd VideoCodec = "CSCD"
	CodecGif  VideoCodec = "GIF"
)

// VideoRecordConfig holds the video recorder's last used options.
type VideoRecordConfig struct {
	Codec            VideoCodec `json:"codec"`
	CompressionLevel uint32     `json:"compressionLevel"`
	RecordSystemHud  bool       `json:"recordSystemHud"`
	RecordInputHud   bool       `json:"recordInputHud"`
}

// NewVideoRecordConfig returns the recorder defaults.
func NewVideoRecordConfig() *VideoRecordConfig {
	return &VideoRecordConfig{Codec: CodecCscd, CompressionLevel: 6}
}

// Clone implements Cloner.
func (c *VideoRecordConfig) Clone() *VideoRecordConfig {
	clone := *c
	return &clone
}

// MovieRecordConfig holds input-movie recording options.
type MovieRecordConfig struct {
	RecordFrom  string `json:"recordFrom"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// NewMovieRecordConfig returns the movie recorder defaults.
func NewMovieRecordConfig() *MovieRecordConfig {
	return &MovieRecordConfig{RecordFrom: "CurrentState"}
}

// Clone implements Cloner.
func (c *MovieRecordConfig) Clone() *MovieRecordConfig {
	clone := *c
	return &clone
}

// HdPackBuilderConfig holds the NES HD pack builder options.
type HdPackBuilderConfig struct {
	Scale                uint32 `json:"scale"`
	ChrRamBankSize       uint32 `json:"chrRamBankSize"`
	UseLargeSprites      bool   `json:"useLargeSprites"`
	SortByUsageFrequency bool   `json:"sortByUsageFrequency"`
	GroupBlankTiles      bool   `json:"groupBlankTiles"`
	IgnoreOverscan       bool   `json:"ignoreOverscan"`
}

// NewHdPackBuilderConfig returns the HD pack builder defaults.
func NewHdPackBuilderConfig() *HdPackBuilderConfig {
	return &HdPackBuilderConfig{
		Scale:                1,
		ChrRamBankSize:       0x1000,
		SortByUsageFrequency: true,
		GroupBlankTiles:      true,
	}
}

// Clone implements Cloner.
func (c *HdPackBuilderConfig) Clone() *HdPackBuilderConfig {
	clone := *c
	return &clone
}
