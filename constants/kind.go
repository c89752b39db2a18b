package constants

// OpKind is the unit of delegated work an operation tracks.
type OpKind string

const (
	KindTextExtraction OpKind = "TEXT_EXTRACTION"
	KindClassification OpKind = "CLASSIFICATION"
	KindAbbreviation   OpKind = "ABBREVIATION"
)

// OpKinds lists the stable kind values for schema validation.
var OpKinds = []string{
	string(KindTextExtraction),
	string(KindClassification),
	string(KindAbbreviation),
}

// Provider identifies the integration that performs the work. LOCAL covers
// in-process work (spreadsheet text extraction) so every operation carries a
// provider regardless of where it ran.
type Provider string

const (
	ProviderYandexVision Provider = "YANDEX_VISION"
	ProviderYandexGPT    Provider = "YANDEX_GPT"
	ProviderLocal        Provider = "LOCAL"
)

// Providers lists the stable provider values for schema validation.
var Providers = []string{
	string(ProviderYandexVision),
	string(ProviderYandexGPT),
	string(ProviderLocal),
}

// ValidCombination reports whether kind may be dispatched to provider.
func ValidCombination(kind OpKind, provider Provider) bool {
	switch kind {
	case KindTextExtraction:
		return provider == ProviderYandexVision || provider == ProviderLocal
	case KindClassification, KindAbbreviation:
		return provider == ProviderYandexGPT
	}
	return false
}
