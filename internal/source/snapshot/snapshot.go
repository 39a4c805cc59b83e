// Package snapshot loads a property fact snapshot from a JSON fixture file
// into a memory store. The file is validated against an embedded JSON
// Schema before any entity is constructed, so a malformed snapshot is
// rejected as a whole rather than half-loaded. Parcel boundaries can be
// enriched from a municipal cadastral shapefile keyed by muni_id.
package snapshot

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"fundus/internal/property/models"
	"fundus/internal/source/memory"
	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
	"fundus/pkg/geo"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaPath = "schemas/snapshot.schema.json"

func compileSchema() (*jsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaPath, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

type document struct {
	Parcels []struct {
		ID       string       `json:"id"`
		MuniID   string       `json:"muni_id"`
		Zoning   string       `json:"zoning"`
		Boundary *geo.Polygon `json:"boundary"`
	} `json:"parcels"`
	Buildings []struct {
		ID        string  `json:"id"`
		ParcelID  string  `json:"parcel_id"`
		YearBuilt int     `json:"year_built"`
		Structure string  `json:"structure"`
		Floors    int     `json:"floors"`
		BuaM2     float64 `json:"bua_m2"`
	} `json:"buildings"`
	Units []struct {
		ID          string  `json:"id"`
		BuildingID  string  `json:"building_id"`
		UseType     string  `json:"use_type"`
		NlaM2       float64 `json:"nla_m2"`
		FloorNo     int     `json:"floor_no"`
		Bedrooms    *int    `json:"bedrooms"`
		Orientation string  `json:"orientation"`
	} `json:"units"`
	Leases []struct {
		ID          string    `json:"id"`
		UnitID      string    `json:"unit_id"`
		TenantHash  string    `json:"tenant_hash"`
		StartDate   time.Time `json:"start_date"`
		EndDate     time.Time `json:"end_date"`
		RentMonthly float64   `json:"rent_monthly"`
		Deposit     float64   `json:"deposit"`
		Status      string    `json:"status"`
	} `json:"leases"`
	Meters []struct {
		ID           string `json:"id"`
		Scope        string `json:"scope"`
		ScopeID      string `json:"scope_id"`
		Type         string `json:"type"`
		ProviderAcct string `json:"provider_acct"`
	} `json:"meters"`
	Readings []struct {
		MeterID string    `json:"meter_id"`
		TS      time.Time `json:"ts"`
		Value   float64   `json:"value"`
	} `json:"readings"`
	Permits []struct {
		ID          string     `json:"id"`
		Scope       string     `json:"scope"`
		ScopeID     string     `json:"scope_id"`
		Kind        string     `json:"kind"`
		Status      string     `json:"status"`
		IssuedOn    time.Time  `json:"issued_on"`
		CompletedOn *time.Time `json:"completed_on"`
		PermitNo    string     `json:"permit_no"`
	} `json:"permits"`
	Titles []struct {
		ID          string            `json:"id"`
		Scope       string            `json:"scope"`
		ScopeID     string            `json:"scope_id"`
		OwnerHash   string            `json:"owner_hash"`
		DeedNo      string            `json:"deed_no"`
		Encumbrance map[string]string `json:"encumbrance"`
		EffectiveOn time.Time         `json:"effective_on"`
	} `json:"titles"`
}

// Option adjusts how a snapshot is loaded.
type Option func(*loader)

// WithBoundaryShapefile overlays parcel boundaries from the cadastral
// shapefile at path, matching parcels on the named muni_id attribute.
// Boundaries from the shapefile take precedence over ones in the snapshot.
func WithBoundaryShapefile(path, muniIDField string) Option {
	return func(l *loader) {
		l.shpPath = path
		l.shpField = muniIDField
	}
}

type loader struct {
	shpPath  string
	shpField string
}

// Load reads, validates, and materializes the snapshot at path.
func Load(path string, opts ...Option) (*memory.Store, error) {
	var l loader
	for _, opt := range opts {
		opt(&l)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInvalidInput, "snapshot is not valid JSON", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInvalidInput, "snapshot failed schema validation", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	var boundaries map[string]geo.Polygon
	if l.shpPath != "" {
		boundaries, err = LoadBoundaries(l.shpPath, l.shpField)
		if err != nil {
			return nil, fmt.Errorf("load boundary shapefile: %w", err)
		}
	}

	return materialize(doc, boundaries)
}

func materialize(doc document, boundaries map[string]geo.Polygon) (*memory.Store, error) {
	store := memory.NewStore()

	for _, raw := range doc.Parcels {
		id, err := domain.ParseParcelID(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("parcel id %q: %w", raw.ID, err)
		}
		var boundary geo.Polygon
		if raw.Boundary != nil {
			boundary = *raw.Boundary
		}
		if b, ok := boundaries[raw.MuniID]; ok {
			boundary = b
		}
		parcel, err := models.NewParcel(id, raw.MuniID, raw.Zoning, boundary)
		if err != nil {
			return nil, fmt.Errorf("parcel %s: %w", raw.ID, err)
		}
		store.PutParcel(parcel)
	}

	for _, raw := range doc.Buildings {
		id, err := domain.ParseBuildingID(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("building id %q: %w", raw.ID, err)
		}
		parcelID, err := domain.ParseParcelID(raw.ParcelID)
		if err != nil {
			return nil, fmt.Errorf("building %s parcel id: %w", raw.ID, err)
		}
		building, err := models.NewBuilding(id, parcelID, raw.YearBuilt, raw.Structure, raw.Floors, raw.BuaM2)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", raw.ID, err)
		}
		store.PutBuilding(building)
	}

	for _, raw := range doc.Units {
		id, err := domain.ParseUnitID(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("unit id %q: %w", raw.ID, err)
		}
		buildingID, err := domain.ParseBuildingID(raw.BuildingID)
		if err != nil {
			return nil, fmt.Errorf("unit %s building id: %w", raw.ID, err)
		}
		unit, err := models.NewUnit(id, buildingID, raw.UseType, raw.NlaM2, raw.FloorNo, raw.Bedrooms, raw.Orientation)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", raw.ID, err)
		}
		store.PutUnit(unit)
	}

	for _, raw := range doc.Leases {
		id, err := domain.ParseLeaseID(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("lease id %q: %w", raw.ID, err)
		}
		unitID, err := domain.ParseUnitID(raw.UnitID)
		if err != nil {
			return nil, fmt.Errorf("lease %s unit id: %w", raw.ID, err)
		}
		status, err := models.ParseLeaseStatus(raw.Status)
		if err != nil {
			return nil, fmt.Errorf("lease %s: %w", raw.ID, err)
		}
		lease, err := models.NewLease(id, unitID, raw.TenantHash, raw.StartDate, raw.EndDate, raw.RentMonthly, raw.Deposit, status)
		if err != nil {
			return nil, fmt.Errorf("lease %s: %w", raw.ID, err)
		}
		store.PutLease(lease)
	}

	for _, raw := range doc.Meters {
		id, err := domain.ParseMeterID(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("meter id %q: %w", raw.ID, err)
		}
		ref, err := parseScopeRef(raw.Scope, raw.ScopeID)
		if err != nil {
			return nil, fmt.Errorf("meter %s: %w", raw.ID, err)
		}
		meter, err := models.NewMeter(id, ref, raw.Type, raw.ProviderAcct)
		if err != nil {
			return nil, fmt.Errorf("meter %s: %w", raw.ID, err)
		}
		store.PutMeter(meter)
	}

	for _, raw := range doc.Readings {
		meterID, err := domain.ParseMeterID(raw.MeterID)
		if err != nil {
			return nil, fmt.Errorf("reading meter id %q: %w", raw.MeterID, err)
		}
		reading, err := models.NewMeterReading(meterID, raw.TS, raw.Value)
		if err != nil {
			return nil, fmt.Errorf("reading for %s: %w", raw.MeterID, err)
		}
		store.PutReading(reading)
	}

	for _, raw := range doc.Permits {
		id, err := domain.ParsePermitID(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("permit id %q: %w", raw.ID, err)
		}
		ref, err := parseScopeRef(raw.Scope, raw.ScopeID)
		if err != nil {
			return nil, fmt.Errorf("permit %s: %w", raw.ID, err)
		}
		status, err := models.ParsePermitStatus(raw.Status)
		if err != nil {
			return nil, fmt.Errorf("permit %s: %w", raw.ID, err)
		}
		permit, err := models.NewPermit(id, ref, raw.Kind, status, raw.IssuedOn, raw.CompletedOn, raw.PermitNo)
		if err != nil {
			return nil, fmt.Errorf("permit %s: %w", raw.ID, err)
		}
		store.PutPermit(permit)
	}

	for _, raw := range doc.Titles {
		id, err := domain.ParseTitleID(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("title id %q: %w", raw.ID, err)
		}
		ref, err := parseScopeRef(raw.Scope, raw.ScopeID)
		if err != nil {
			return nil, fmt.Errorf("title %s: %w", raw.ID, err)
		}
		title, err := models.NewTitleRecord(id, ref, raw.OwnerHash, raw.DeedNo, raw.Encumbrance, raw.EffectiveOn)
		if err != nil {
			return nil, fmt.Errorf("title %s: %w", raw.ID, err)
		}
		store.PutTitle(title)
	}

	return store, nil
}

func parseScopeRef(tag, rawID string) (domain.ScopeRef, error) {
	parsed, err := domain.ParseScopeTag(tag)
	if err != nil {
		return domain.ScopeRef{}, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return domain.ScopeRef{}, dErrors.Wrap(dErrors.CodeInvalidInput, "scope id is not a uuid", err)
	}
	return domain.ScopeRef{Tag: parsed, ID: id}, nil
}
