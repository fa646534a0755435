package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Resolution metric names
const (
	MetricNameRecordsResolved    = "catalog_records_resolved_total"
	MetricNameRecordsSkipped     = "catalog_records_skipped_total"
	MetricNameSubtreesDowngraded = "catalog_subtrees_downgraded_total"
	MetricNameResolveDuration    = "catalog_resolve_duration_seconds"
)

// Export metric names
const (
	MetricNameItemsExported  = "catalog_items_exported_total"
	MetricNameTextureJobs    = "catalog_texture_jobs_total"
	MetricNameExportFailures = "catalog_export_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextRecordsResolved    = "Records resolved into catalog items"
	HelpTextRecordsSkipped     = "Records left out of the catalog, by reason"
	HelpTextSubtreesDowngraded = "Optional sub-trees that failed to resolve and were dropped, by component"
	HelpTextResolveDuration    = "Time spent resolving a full batch"
	HelpTextItemsExported      = "Item documents written by the exporter"
	HelpTextTextureJobs        = "Texture jobs handed to the cropper, by kind"
	HelpTextExportFailures     = "Export steps that failed, by stage"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelReason    = "reason"
	LabelComponent = "component"
	LabelKind      = "kind"
	LabelStage     = "stage"
)

// Skip reasons
const (
	ReasonNoDirectory = "no_directory"
	ReasonNoSprite    = "no_sprite"
	ReasonBadSprite   = "bad_sprite"
	ReasonFiltered    = "filtered"
)

// Components that can be downgraded to absent
const (
	ComponentPricing     = "pricing"
	ComponentDeconstruct = "deconstruct"
	ComponentRecipe      = "recipe"
	ComponentIcon        = "icon"
	ComponentColour      = "colour"
)

// ResolveDurationBuckets covers small test batches up to the full vanilla item set.
var ResolveDurationBuckets = []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5}
