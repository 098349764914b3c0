// Package stamp writes the latest commit's hash and date into text files by
// replacing two literal placeholders:
//
//	#define COMMIT_HASH "!!!COMMIT_HASH!!!"
//	#define COMMIT_DATE "!!!COMMIT_DATE!!!"
//
// becomes
//
//	#define COMMIT_HASH "09fff368d273878896277311ac4a01604eedc3ca"
//	#define COMMIT_DATE "2023-05-05T21:57:16+09:00"
//
// The placeholders are plain substrings; the surrounding syntax is never
// inspected. Two write strategies exist. Generate renders a base template
// into a separate output and leaves the output untouched when its content
// would not change, so build systems do not see a spurious rebuild. Modify
// rewrites a single file in place on every call.
//
// Runner ties the pieces together for both programs: validate paths, ask git
// whether the repository path is a repository root, fetch the commit or fall
// back to NotRepository, then write.
package stamp
