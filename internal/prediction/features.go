package prediction

// FeatureCount is the number of features the fraud model consumes
const FeatureCount = 5

// Feature describes one input signal of the fraud model. The metadata here
// drives both query validation and the generated API documentation, so the
// two cannot drift apart.
type Feature struct {
	// Name is the query parameter name and the feature's position key
	Name string

	// Binary restricts the feature to the values 0 and 1
	Binary bool

	// Description is the human-readable explanation exposed in the API docs
	Description string

	// Example is a representative value for documentation
	Example float64
}

// Features lists the model's inputs in the exact order the scaler and the
// model expect them. Order matters: the normalized vector is built
// positionally from this list.
var Features = [FeatureCount]Feature{
	{
		Name:        "distance",
		Description: "Distance from last transaction location in km",
		Example:     0.0,
	},
	{
		Name:        "ratio_to_median",
		Description: "Ratio of transaction amount to median amount",
		Example:     1.0,
	},
	{
		Name:        "pin",
		Binary:      true,
		Description: "PIN used (1) or not (0)",
		Example:     1,
	},
	{
		Name:        "chip",
		Binary:      true,
		Description: "Chip used (1) or not (0)",
		Example:     1,
	},
	{
		Name:        "online",
		Binary:      true,
		Description: "Online transaction (1) or not (0)",
		Example:     0,
	},
}
