// Package publish stores rendered HTML.
//
// S3Publisher uploads to a bucket through the AWS SDK; DirPublisher writes
// to a local directory. Both implement Publisher and report failures with
// code E030.
package publish
