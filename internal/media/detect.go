package media

import "strings"

var audioExts = map[string]bool{
	".wav":  true,
	".aif":  true,
	".aiff": true,
	".flac": true,
	".mp3":  true,
	".ogg":  true,
}

// IsSupportedExt returns true if the extension has a decoder.
func IsSupportedExt(ext string) bool {
	return audioExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of decodable formats.
func SupportedExtsList() string {
	return ".wav, .aif, .aiff, .flac, .mp3, .ogg"
}
