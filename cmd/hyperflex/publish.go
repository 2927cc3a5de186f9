package main

import (
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-dev/hyperflex/pkg/publish"
)

func publishCmd(a *app) *cobra.Command {
	var (
		opts   renderOptions
		key    string
		bucket string
		prefix string
		region string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Render a document and publish the HTML",
		Long: `Render a document and upload the HTML to S3, or write it to a
local directory with --dir.

The object key defaults to the document's base name with an .html
extension. Bucket, prefix and region default to the publish section of
hyperflex.json. AWS credentials come from the standard SDK chain.

Examples:
  hyperflex publish --bucket my-site --prefix pages/ menu.yaml
  hyperflex publish --dir ./public --page --title Menu menu.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, src, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			html, err := a.renderDocument(ctx, name, src, opts)
			if err != nil {
				return err
			}

			if key == "" {
				key = htmlKey(args[0])
			}

			var pub publish.Publisher
			if dir != "" {
				pub, err = publish.NewDirPublisher(dir)
				if err != nil {
					return err
				}
			} else {
				pc := a.cfg.Publish
				if bucket == "" {
					bucket = pc.Bucket
				}
				if !cmd.Flags().Changed("prefix") {
					prefix = pc.Prefix
				}
				if region == "" {
					region = pc.Region
				}

				var loadOpts []func(*awsconfig.LoadOptions) error
				if region != "" {
					loadOpts = append(loadOpts, awsconfig.WithRegion(region))
				}
				awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
				if err != nil {
					return err
				}
				pub = publish.NewS3Publisher(s3.NewFromConfig(awsCfg), bucket, prefix).
					WithContentType(pc.ContentType).
					WithCacheControl(pc.CacheControl)
			}

			where, err := pub.Publish(ctx, key, html)
			if err != nil {
				return err
			}
			a.logger.Info("published", "key", key, "location", where, "bytes", len(html))
			success(cmd.ErrOrStderr(), "Published %s", where)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the output in a full HTML document")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Page title (with --page)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Object key (default <name>.html)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from config)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from config or environment)")
	cmd.Flags().StringVar(&dir, "dir", "", "Write to a local directory instead of S3")

	return cmd
}

// htmlKey turns a document path into an object key: menu.yaml → menu.html.
func htmlKey(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}
