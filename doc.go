// Package assetsync reconciles a declared set of release assets against the
// assets already attached to a remote release. It expands glob patterns into
// local files, deduplicates them, diffs the desired set against the remote
// state, and executes the minimal set of upload and replace operations
// concurrently, isolating per-asset failures so one bad upload never aborts
// its siblings.
//
// The module emphasizes substitutable collaborators: the remote host is an
// injected interface, the filesystem is a go-billy filesystem, and logging
// goes through a caller-supplied slog logger.
//
// Key features:
//   - Glob-based asset discovery with mandatory/optional patterns
//   - Name/label overrides for single-file patterns
//   - Case-insensitive deduplication of local candidates
//   - Concurrent uploads and delete-then-upload replacements with
//     per-operation failure isolation
//   - Deterministic, locale-aware ordering of the final asset list
//
// Example usage:
//
//	client, err := assetsync.New(host,
//	    assetsync.WithLogger(slog.Default()),
//	    assetsync.WithConcurrency(8),
//	)
//	if err != nil {
//	    return err
//	}
//
//	report, err := client.Sync(ctx, "v1.4.0", specs, existing)
//	if err != nil {
//	    return err
//	}
//	if !report.Succeeded {
//	    // partial state: report.Assets lists what did make it up
//	}
package assetsync
