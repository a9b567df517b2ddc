package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"ai-marketing/generator"
	"ai-marketing/models"
	"ai-marketing/platform"
)

type generatorFactory func(ctx context.Context, logLevel string) *generator.Generator

// cli 는 하위 명령이 공유하는 상품 플래그와 생성기를 들고 있다.
type cli struct {
	build    generatorFactory
	gen      *generator.Generator
	logLevel string

	name        string
	url         string
	description string
	category    string
	price       float64
	images      []string
}

func newRootCmd(build generatorFactory) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:   "copygen",
		Short: "Generate marketing copy for a product",
		Long: `copygen generates product titles, intros, specs, audience analysis,
ad creatives and video scripts. A remote LLM is used when an API key is
configured; otherwise every item comes from deterministic templates.

Output is JSON on stdout.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.gen = c.build(commandContext(cmd), c.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	pf.StringVar(&c.name, "name", "", "product name")
	pf.StringVar(&c.url, "url", "", "product page URL, analyzed when --name is empty")
	pf.StringVar(&c.description, "description", "", "product description")
	pf.StringVar(&c.category, "category", "", "product category")
	pf.Float64Var(&c.price, "price", 0, "product price")
	pf.StringSliceVar(&c.images, "image", nil, "product image URL (repeatable)")

	root.AddCommand(
		c.providerCmd(),
		c.analyzeCmd(),
		c.copiesCmd(),
		c.audienceCmd(),
		c.adsCmd(),
		c.scriptCmd(),
		c.convertCmd(),
	)
	return root
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (c *cli) product() models.ProductInfo {
	return models.ProductInfo{
		Name:        c.name,
		URL:         c.url,
		Description: c.description,
		Category:    c.category,
		Price:       c.price,
		Images:      c.images,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (c *cli) providerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provider",
		Short: "Show which generation provider was selected",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := c.gen.Selection()
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"name":   sel.Name,
				"remote": sel.Remote,
				"reason": sel.Reason,
			})
		},
	}
}

func (c *cli) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Infer product fields from --url",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := c.gen.AnalyzeProductURL(commandContext(cmd), c.url)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), info)
		},
	}
}

func (c *cli) copiesCmd() *cobra.Command {
	req := models.DefaultGenerationRequest()
	var titleLength, introLength string

	cmd := &cobra.Command{
		Use:   "copies",
		Short: "Generate titles, intros and a spec block",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			product, err := c.gen.PrepareProduct(ctx, c.product())
			if err != nil {
				return err
			}
			req.TitleLength = models.LengthTier(titleLength)
			req.IntroLength = models.LengthTier(introLength)

			result, err := c.gen.GenerateAll(ctx, product, req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"product":  product,
				"copies":   result.Copies,
				"keywords": result.Keywords,
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&req.TitleCount, "titles", req.TitleCount, "number of titles")
	f.StringVar(&titleLength, "title-length", string(req.TitleLength), "title length: SHORT, MEDIUM or LONG")
	f.IntVar(&req.IntroCount, "intros", req.IntroCount, "number of intros")
	f.StringVar(&introLength, "intro-length", string(req.IntroLength), "intro length: SHORT, MEDIUM or LONG")
	f.BoolVar(&req.GenerateSpec, "spec", req.GenerateSpec, "generate the spec block")
	f.IntVar(&req.KeywordCount, "keywords", req.KeywordCount, "number of keywords")
	return cmd
}

func (c *cli) audienceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audience",
		Short: "Suggest target audiences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			var (
				analysis models.AudienceAnalysis
				err      error
			)
			if c.name != "" {
				analysis, err = c.gen.AnalyzeAudience(ctx, c.product())
			} else {
				analysis, err = c.gen.AnalyzeAudienceByURL(ctx, c.url)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), analysis)
		},
	}
}

func (c *cli) adsCmd() *cobra.Command {
	var (
		count  int
		length string
	)
	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Generate social ad creatives with format validation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			product, err := c.gen.PrepareProduct(ctx, c.product())
			if err != nil {
				return err
			}
			ads, err := c.gen.GenerateAds(ctx, product, count, models.LengthTier(length))
			if err != nil {
				return err
			}
			validations := make([]models.AdValidation, 0, len(ads))
			for _, ad := range ads {
				validations = append(validations, platform.ValidateAd(ad))
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{"ads": ads, "validations": validations})
		},
	}
	cmd.Flags().IntVar(&count, "count", 5, "number of ads")
	cmd.Flags().StringVar(&length, "length", string(models.LengthShort), "primary text length: SHORT or LONG")
	return cmd
}

func (c *cli) scriptCmd() *cobra.Command {
	var (
		style    string
		duration int
	)
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Generate a short-video script",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			product, err := c.gen.PrepareProduct(ctx, c.product())
			if err != nil {
				return err
			}
			script, err := c.gen.GenerateScript(ctx, product, models.VideoStyle(style), duration)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), script)
		},
	}
	cmd.Flags().StringVar(&style, "style", string(models.StyleSalesTalk), "sales_talk, product_display or story_telling")
	cmd.Flags().IntVar(&duration, "duration", 15, "duration in seconds")
	return cmd
}

func (c *cli) convertCmd() *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "convert <platform>",
		Short: "Convert a title and content for a marketplace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := models.ParsePlatform(args[0])
			if err != nil {
				return err
			}
			if title == "" && content == "" {
				return errors.New("--title or --content is required")
			}
			src := models.GeneratedCopy{Title: title, Content: content}
			return writeJSON(cmd.OutOrStdout(), platform.Convert(c.product(), src, p))
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "copy title")
	cmd.Flags().StringVar(&content, "content", "", "copy content")
	return cmd
}
