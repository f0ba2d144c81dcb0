package opendataset

import (
	"encoding/csv"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nvr-ai/go-annotations/dataset"
	"github.com/nvr-ai/go-annotations/label"
)

// NameLISATrafficLight is the registered name of the LISA traffic light
// dataset.
const NameLISATrafficLight = "LISATrafficLight"

//go:embed catalogs/lisatrafficlight.json
var lisaTrafficLightCatalog []byte

// Every annotation directory holds one BOX and one BULB csv; the box
// supercategory prefixes the per-row annotation tag in the label category.
var lisaSupercategories = map[string]string{
	"frameAnnotationsBOX.csv":  "BOX",
	"frameAnnotationsBULB.csv": "BULB",
}

// LISATrafficLight loads the LISA traffic light dataset.
//
// The root directory should hold the published layout: an
// Annotations/Annotations tree with one directory per clip or sequence, each
// containing frameAnnotationsBOX.csv and frameAnnotationsBULB.csv, and the
// matching frame images under <prefix>/frames/*.jpg where <prefix> repeats
// the clip directory path.
//
// The dataset is time-continuous: each segment is one clip whose frames are
// numbered without gaps, and a gap in the numbering is reported as an error.
// Every frame gets day/night classification from its clip name plus the 2D
// boxes of both csv files.
func LISATrafficLight(path string) (*dataset.Dataset, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %q", path)
	}
	annotationPath := filepath.Join(root, "Annotations", "Annotations")

	ds := dataset.NewDataset(NameLISATrafficLight)
	ds.IsContinuous = true
	if err := ds.LoadCatalogBytes(lisaTrafficLightCatalog); err != nil {
		return nil, err
	}

	csvPaths, err := globRecursive(annotationPath, ".csv")
	if err != nil {
		return nil, err
	}

	// Sorted order pairs each clip's BOX csv with its BULB csv.
	for i := 0; i+1 < len(csvPaths); i += 2 {
		boxCSVPath, bulbCSVPath := csvPaths[i], csvPaths[i+1]

		segmentName, err := lisaSegmentName(boxCSVPath)
		if err != nil {
			return nil, err
		}
		segment := ds.CreateSegment(segmentName)

		prefix, err := lisaPathPrefix(annotationPath, boxCSVPath)
		if err != nil {
			return nil, err
		}
		classification := lisaClassification(prefix)

		frameDir := filepath.Join(root, prefix)
		imagePaths, err := glob(filepath.Join(frameDir, "*.jpg"))
		if err != nil {
			return nil, err
		}

		// Frame numbers come from file names like "daySequence1--00345.jpg";
		// the labels index frames by number, so the sequence must be gapless.
		lastFrame, err := lisaFrameNumber(imagePaths[len(imagePaths)-1])
		if err != nil {
			return nil, err
		}
		if lastFrame+1 != len(imagePaths) {
			return nil, errors.Errorf("discontinuous frame number in %q", frameDir)
		}

		for _, imagePath := range imagePaths {
			data := dataset.NewData(imagePath)
			data.Label.Box2D = []label.Box2D{}
			if classification != "" {
				data.Label.Classification = &label.Classification{Category: classification}
			}
			segment.Append(data)
		}

		if err := lisaAddLabels(segment, boxCSVPath); err != nil {
			return nil, err
		}
		if err := lisaAddLabels(segment, bulbCSVPath); err != nil {
			return nil, err
		}

		log.Info("loaded segment",
			zap.String("dataset", NameLISATrafficLight),
			zap.String("segment", segmentName),
			zap.Int("data", segment.Len()),
		)
	}
	return ds, nil
}

var lisaDigitRun = regexp.MustCompile(`\d+`)

// lisaSegmentName derives the segment name from the first annotated file
// name in the csv, zero-padding the clip number so segments sort naturally:
// "dayClip1--00204.jpg" becomes "dayClip01".
func lisaSegmentName(csvPath string) (string, error) {
	rows, err := lisaReadCSV(csvPath)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", errors.Errorf("annotation file %q holds no rows", csvPath)
	}
	filename := filepath.Base(filepath.FromSlash(rows[0]["Filename"]))
	cut := strings.Index(filename, "-")
	if cut < 0 {
		return "", errors.Errorf("unexpected annotated file name %q in %q", filename, csvPath)
	}
	header := filename[:cut]

	loc := lisaDigitRun.FindStringIndex(header)
	if loc == nil {
		return header, nil
	}
	number, err := strconv.Atoi(header[loc[0]:loc[1]])
	if err != nil {
		return "", errors.Wrapf(err, "annotation file %q", csvPath)
	}
	return fmt.Sprintf("%s%02d%s", header[:loc[0]], number, header[loc[1]:]), nil
}

// lisaPathPrefix maps an annotation csv to the directory of its frames,
// relative to the dataset root. The published layout duplicates the top
// directory name, e.g. annotations under dayTrain/dayClip1 pair with frames
// under dayTrain/dayTrain/dayClip1/frames.
func lisaPathPrefix(annotationPath, csvPath string) (string, error) {
	rel, err := filepath.Rel(annotationPath, filepath.Dir(csvPath))
	if err != nil {
		return "", errors.Wrapf(err, "annotation file %q", csvPath)
	}
	splits := strings.Split(rel, string(filepath.Separator))
	parts := make([]string, 0, len(splits)+2)
	parts = append(parts, splits[0])
	parts = append(parts, splits...)
	parts = append(parts, "frames")
	return filepath.Join(parts...), nil
}

func lisaClassification(prefix string) string {
	switch {
	case strings.HasPrefix(prefix, "day"):
		return "day"
	case strings.HasPrefix(prefix, "night"):
		return "night"
	}
	return ""
}

// lisaFrameNumber reads the five-digit frame number out of a frame file name
// like "daySequence1--00345.jpg".
func lisaFrameNumber(imagePath string) (int, error) {
	base := filepath.Base(imagePath)
	if len(base) < 9 {
		return 0, errors.Errorf("unexpected frame file name %q", base)
	}
	number, err := strconv.Atoi(base[len(base)-9 : len(base)-4])
	if err != nil {
		return 0, errors.Wrapf(err, "unexpected frame file name %q", base)
	}
	return number, nil
}

// lisaAddLabels parses one annotation csv and appends its boxes to the
// already populated frames of the segment.
func lisaAddLabels(segment *dataset.Segment, csvPath string) error {
	supercategory, ok := lisaSupercategories[filepath.Base(csvPath)]
	if !ok {
		return errors.Errorf("unexpected annotation file name %q", csvPath)
	}

	rows, err := lisaReadCSV(csvPath)
	if err != nil {
		return err
	}
	for _, row := range rows {
		frameNumber, err := strconv.Atoi(row["Origin frame number"])
		if err != nil {
			return errors.Wrapf(err, "annotation file %q", csvPath)
		}
		if frameNumber < 0 || frameNumber >= segment.Len() {
			return errors.Errorf("annotation file %q references missing frame %d",
				csvPath, frameNumber)
		}

		bounds := make([]float64, 4)
		for i, column := range []string{
			"Upper left corner X",
			"Upper left corner Y",
			"Lower right corner X",
			"Lower right corner Y",
		} {
			value, err := strconv.Atoi(row[column])
			if err != nil {
				return errors.Wrapf(err, "annotation file %q column %q", csvPath, column)
			}
			bounds[i] = float64(value)
		}

		data := segment.Data[frameNumber]
		data.Label.Box2D = append(data.Label.Box2D, label.NewBox2D(
			bounds[0], bounds[1], bounds[2], bounds[3],
			supercategory+"."+row["Annotation tag"],
		))
	}
	return nil
}

// lisaReadCSV reads a semicolon-delimited annotation csv into one map per
// row, keyed by the header line.
func lisaReadCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open annotation file %q", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parse annotation file %q", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("annotation file %q is empty", path)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
