package wardrobe

// UploadResult reports the outcome of pushing a collection to its remote
// table. Count is the number of records in batches the remote accepted.
// When some batches fail but others land, Success and Partial are both set
// and Err holds the last failure; Success alone is false only when nothing
// was accepted.
type UploadResult struct {
	Success bool
	Count   int
	Partial bool
	Err     error
}
