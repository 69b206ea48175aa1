package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/csiapi/internal/diagram"
	"github.com/alexiusacademia/csiapi/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionPropsFile       string
	sectionPropsMaterial   string
	sectionPropsName       string
	sectionPropsExportFile string
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Calculate properties of a polygonal section",
	Long: `Calculate area, centroid, second moments, section moduli, radii of
gyration and an estimated torsion constant for a polygonal section
defined in a JSON file. Vertices are in model length units.

With --material the properties are defined in the stored model as a
general frame section, named by --name or the section's own name.

Examples:
  csiapi section props --file t-beam.json
  csiapi section props -f t-beam.json --material C28 --name TB1
  csiapi section props -f t-beam.json -o t-beam.png`,
	RunE: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&sectionPropsFile, "file", "f", "", "Path to section JSON file [required]")
	sectionPropsCmd.MarkFlagRequired("file")

	sectionPropsCmd.Flags().StringVar(&sectionPropsMaterial, "material", "", "Define the section in the model with this material")
	sectionPropsCmd.Flags().StringVar(&sectionPropsName, "name", "", "Frame section name (default: the section's name)")
	sectionPropsCmd.Flags().StringVarP(&sectionPropsExportFile, "output", "o", "", "Export section drawing to file (png, svg, pdf)")
}

func runSectionProps(cmd *cobra.Command, args []string) error {
	sec, err := section.LoadFromFile(sectionPropsFile)
	if err != nil {
		return fmt.Errorf("loading section: %w", err)
	}
	props := sec.CalculateProperties()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          POLYGONAL SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (t2):\t%.4g\n", props.Width)
	fmt.Fprintf(w, "  Depth (t3):\t%.4g\n", props.Height)
	fmt.Fprintf(w, "  Area:\t%.6g\n", props.Area)
	fmt.Fprintf(w, "  Centroid:\t(%.4g, %.4g)\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Vertices))
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Property\tMajor (3)\tMinor (2)\n")
	fmt.Fprintf(w, "  ────────\t─────────\t─────────\n")
	fmt.Fprintf(w, "  Moment of inertia\t%.6g\t%.6g\n", props.Ixx, props.Iyy)
	fmt.Fprintf(w, "  Section modulus\t%.6g\t%.6g\n", props.Sx, props.Sy)
	fmt.Fprintf(w, "  Plastic modulus\t%.6g\t%.6g\n", props.Zx, props.Zy)
	fmt.Fprintf(w, "  Radius of gyration\t%.4g\t%.4g\n", props.Rx, props.Ry)
	w.Flush()
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Product of inertia:\t%.6g\n", props.Ixy)
	fmt.Fprintf(w, "  Torsion constant (est.):\t%.6g\n", props.J)
	w.Flush()
	fmt.Println()

	if sectionPropsExportFile != "" {
		if err := diagram.ExportSection(sec, props, sectionPropsExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("  Section drawing exported to: %s\n", sectionPropsExportFile)
		fmt.Println()
	}

	if sectionPropsMaterial == "" {
		return nil
	}
	name := sectionPropsName
	if name == "" {
		name = sec.Name
	}
	if name == "" {
		return fmt.Errorf("section has no name: use --name")
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.unlock(); err != nil {
		return err
	}
	if err := s.model.Properties().FrameSections().SetGeneral(name, sectionPropsMaterial, props.General()); err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}
	fmt.Printf("  Defined general frame section %s (%s) in %s.\n", name, sectionPropsMaterial, s.name)
	fmt.Println()
	return nil
}
