package scan

import (
	"Pento-Service/domain"
	"Pento-Service/entities"
	"Pento-Service/internal/utils/storage"
	"Pento-Service/pkg/entitlement"
	"Pento-Service/pkg/gemini"
	"Pento-Service/pkg/imagesearch"
	"Pento-Service/pkg/openfoodfacts"
	"Pento-Service/pkg/vision"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// imageSearchTimeout bounds each per-name enrichment lookup; a timeout is
// treated the same as "no image found".
const imageSearchTimeout = 10 * time.Second

type (
	// ScanService ingests food observations from the three scan sources,
	// reconciles them against the catalog and creates any references that
	// are missing.
	ScanService interface {
		ScanFoodImage(ctx context.Context, image []byte, mimeType string, userID string) (domain.ScanResponse, error)
		ScanReceipt(ctx context.Context, image []byte, mimeType string, userID string) (domain.ScanResponse, error)
		ScanBarcode(ctx context.Context, barcode string, userID string) (domain.BarcodeScanResponse, error)
	}

	scanService struct {
		scanRepository ScanRepository
		entitlements   entitlement.EntitlementService
		gemini         gemini.GeminiClient
		ocr            vision.OCRClient
		products       openfoodfacts.ProductLookupClient
		imageSearch    imagesearch.ImageSearchClient
		s3             storage.AwsS3
		threshold      float64

		// index is the shared fuzzy-match view of the catalog. Each batch
		// takes a read-only snapshot at its start and the service rebuilds
		// the shared view after any bulk insert so later batches see the
		// new rows.
		mu    sync.RWMutex
		index *Index
	}
)

func NewScanService(
	scanRepository ScanRepository,
	entitlements entitlement.EntitlementService,
	geminiClient gemini.GeminiClient,
	ocrClient vision.OCRClient,
	productClient openfoodfacts.ProductLookupClient,
	imageSearchClient imagesearch.ImageSearchClient,
	s3 storage.AwsS3,
) ScanService {
	return &scanService{
		scanRepository: scanRepository,
		entitlements:   entitlements,
		gemini:         geminiClient,
		ocr:            ocrClient,
		products:       productClient,
		imageSearch:    imageSearchClient,
		s3:             s3,
		threshold:      DefaultMatchThreshold,
	}
}

func (s *scanService) ScanFoodImage(ctx context.Context, image []byte, mimeType string, userID string) (domain.ScanResponse, error) {
	if err := s.entitlements.CheckAndReserve(ctx, userID, domain.FeatureFoodScan); err != nil {
		return domain.ScanResponse{}, err
	}

	s.archiveScanImage(ctx, "food-scans", userID, image, mimeType)

	raw, err := s.gemini.RecognizeFromImage(ctx, image, mimeType)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	items := NormalizeVisionResults(raw)
	if len(items) == 0 {
		return domain.ScanResponse{Success: false, Error: domain.MessageNoFoodDetected}, nil
	}

	resp, err := s.resolveBatch(ctx, items)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	s.commitUsage(ctx, userID, domain.FeatureFoodScan)
	return resp, nil
}

func (s *scanService) ScanReceipt(ctx context.Context, image []byte, mimeType string, userID string) (domain.ScanResponse, error) {
	if err := s.entitlements.CheckAndReserve(ctx, userID, domain.FeatureReceiptScan); err != nil {
		return domain.ScanResponse{}, err
	}

	s.archiveScanImage(ctx, "receipt-scans", userID, image, mimeType)

	ocrText, err := s.ocr.ExtractText(ctx, image)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	raw, err := s.gemini.RecognizeFromReceiptText(ctx, ocrText)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	items := NormalizeReceiptResults(raw)
	if len(items) == 0 {
		return domain.ScanResponse{Success: false, Error: domain.MessageNoReceiptItems}, nil
	}

	resp, err := s.resolveBatch(ctx, items)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	s.commitUsage(ctx, userID, domain.FeatureReceiptScan)
	return resp, nil
}

func (s *scanService) ScanBarcode(ctx context.Context, barcode string, userID string) (domain.BarcodeScanResponse, error) {
	if err := s.entitlements.CheckAndReserve(ctx, userID, domain.FeatureBarcodeScan); err != nil {
		return domain.BarcodeScanResponse{}, err
	}

	// Exact barcode match always wins over fuzzy name matching and skips
	// the AI path entirely.
	existing, err := s.scanRepository.FindByBarcode(ctx, barcode)
	if err == nil {
		item := resolveExisting(existing, domain.ObservedItem{Barcode: barcode})
		s.commitUsage(ctx, userID, domain.FeatureBarcodeScan)
		return domain.BarcodeScanResponse{Success: true, Item: &item}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.BarcodeScanResponse{}, domain.NewFailure(domain.KindPersistenceFailure, "failed to look up barcode", err)
	}

	product, err := s.products.FetchByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.BarcodeScanResponse{}, domain.NewFailure(
				domain.KindNotFound,
				fmt.Sprintf("product not found for barcode: %s", barcode),
				err,
			)
		}
		return domain.BarcodeScanResponse{}, err
	}

	info := ExtractProductInfo(product)

	raw, err := s.gemini.NormalizeBarcodeProduct(ctx, info)
	if err != nil {
		log.Printf("gemini barcode normalization failed, using heuristic classifier: %v", err)
		raw = ClassifyProductHeuristically(info)
	}

	imageURL := product.ImageURL
	if imageURL == "" {
		imageURL = s.searchImage(ctx, raw.Name)
	}

	obs := NormalizeBarcodeResult(raw, barcode, imageURL)

	ix, err := s.snapshotIndex(ctx)
	if err != nil {
		return domain.BarcodeScanResponse{}, err
	}

	res, err := s.resolveItem(ctx, obs, ix, newBarcodeSourceID(barcode))
	if err != nil {
		return domain.BarcodeScanResponse{}, err
	}

	var createdID *string
	if res.pending != nil {
		if err := s.scanRepository.BulkInsert(ctx, []*entities.FoodReference{res.pending}); err != nil {
			return domain.BarcodeScanResponse{}, domain.NewFailure(domain.KindPersistenceFailure, "failed to create food reference", err)
		}
		id := res.pending.ID.String()
		createdID = &id
		s.refreshIndex(ctx)
	}

	s.commitUsage(ctx, userID, domain.FeatureBarcodeScan)
	return domain.BarcodeScanResponse{Success: true, Item: &res.item, CreatedID: createdID}, nil
}

// resolveBatch runs Enrich → Resolve → PersistNewEntries → RefreshIndex for
// one batch of observed items.
func (s *scanService) resolveBatch(ctx context.Context, items []domain.ObservedItem) (domain.ScanResponse, error) {
	items = s.enrichImages(ctx, items)

	ix, err := s.snapshotIndex(ctx)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	resolved := make([]domain.ResolvedItem, 0, len(items))
	createdIDs := make([]string, 0)
	var pending []*entities.FoodReference

	for _, obs := range items {
		res, err := s.resolveItem(ctx, obs, ix, newScanSourceID())
		if err != nil {
			return domain.ScanResponse{}, err
		}
		resolved = append(resolved, res.item)
		if res.pending != nil {
			pending = append(pending, res.pending)
			createdIDs = append(createdIDs, res.pending.ID.String())
		}
	}

	if len(pending) > 0 {
		if err := s.scanRepository.BulkInsert(ctx, pending); err != nil {
			return domain.ScanResponse{}, domain.NewFailure(domain.KindPersistenceFailure, "failed to create food references", err)
		}
		log.Printf("created %d new food references", len(pending))
		s.refreshIndex(ctx)
	} else {
		log.Println(domain.MessageAllItemsMatched)
	}

	return domain.ScanResponse{Success: true, Items: resolved, CreatedIDs: createdIDs}, nil
}

// enrichImages looks up an image for every distinct item name that lacks
// one. Lookups run concurrently, one per unique name; a failure or timeout
// for one name leaves that item's image unset and never fails the batch.
func (s *scanService) enrichImages(ctx context.Context, items []domain.ObservedItem) []domain.ObservedItem {
	names := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, item := range items {
		if item.ImageURL != "" || seen[item.Name] {
			continue
		}
		seen[item.Name] = true
		names = append(names, item.Name)
	}
	if len(names) == 0 {
		return items
	}

	var mu sync.Mutex
	images := make(map[string]string, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, imageSearchTimeout)
			defer cancel()

			result, err := s.imageSearch.SearchFoodImage(cctx, name)
			if err != nil || result.ImageURL == "" {
				return nil
			}
			mu.Lock()
			images[name] = result.ImageURL
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for i := range items {
		if items[i].ImageURL == "" {
			items[i].ImageURL = images[items[i].Name]
		}
	}
	return items
}

func (s *scanService) searchImage(ctx context.Context, name string) string {
	cctx, cancel := context.WithTimeout(ctx, imageSearchTimeout)
	defer cancel()

	result, err := s.imageSearch.SearchFoodImage(cctx, name)
	if err != nil {
		return ""
	}
	return result.ImageURL
}

// snapshotIndex returns the read-only index handle a batch uses for its
// whole lifetime, building the shared view on first use.
func (s *scanService) snapshotIndex(ctx context.Context) (*Index, error) {
	s.mu.RLock()
	ix := s.index
	s.mu.RUnlock()
	if ix != nil {
		return ix, nil
	}
	return s.rebuildIndex(ctx)
}

func (s *scanService) rebuildIndex(ctx context.Context) (*Index, error) {
	candidates, err := s.scanRepository.ListCandidates(ctx)
	if err != nil {
		return nil, domain.NewFailure(domain.KindPersistenceFailure, "failed to load food reference candidates", err)
	}

	ix := BuildIndex(candidates, s.threshold)
	s.mu.Lock()
	s.index = ix
	s.mu.Unlock()

	log.Printf("food reference index rebuilt with %d candidates", ix.Len())
	return ix, nil
}

func (s *scanService) refreshIndex(ctx context.Context) {
	if _, err := s.rebuildIndex(ctx); err != nil {
		log.Printf("failed to rebuild food reference index: %v", err)
	}
}

// commitUsage increments entitlement usage after a batch that did real
// work. An increment failure is logged, not surfaced: the scan itself has
// already succeeded.
func (s *scanService) commitUsage(ctx context.Context, userID, featureCode string) {
	if err := s.entitlements.Commit(ctx, userID, featureCode); err != nil {
		log.Printf("failed to commit entitlement usage for %s: %v", featureCode, err)
	}
}

// archiveScanImage uploads the raw scan image for audit, best-effort.
func (s *scanService) archiveScanImage(ctx context.Context, folder, userID string, image []byte, mimeType string) {
	if s.s3 == nil {
		return
	}

	fileName := fmt.Sprintf("%s-%s", userID, uuid.NewString())
	objectKey, err := s.s3.UploadBytes(ctx, fileName, image, mimeType, folder)
	if err != nil {
		log.Printf("failed to archive scan image: %v", err)
		return
	}
	log.Printf("archived scan image at %s", s.s3.GetPublicLinkKey(objectKey))
}
