package mockdata

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"ucr-mock/internal/domain"
)

const (
	maxRevenue      = 5000.0
	maxSightings    = 500
	maxLicenses     = 50
	recordMaxAge    = 180 * 24 * time.Hour
	sightingWindow  = 7 * 24 * time.Hour
	maxReward       = 0.5
	minConfidence   = 70
	maxConfidence   = 99
	unverifiedRatio = 4 // 約 1/4 尚未驗證
)

var (
	creatorNames = []string{
		"Aria Vex", "Kenji Mori", "Luna Okafor", "Dex Hollow", "Mara Quill",
		"Nova Reyes", "Orin Bask", "Sable Lin", "Theo Marsh", "Uma Patel",
		"Vera Stone", "Zed Carver",
	}
	titleAdjectives = []string{
		"Neon", "Silent", "Fractured", "Golden", "Midnight", "Electric",
		"Hollow", "Crimson", "Lucid", "Analog", "Velvet", "Static",
	}
	titleNouns = []string{
		"Requiem", "Horizon", "Signal", "Bloom", "Archive", "Pulse",
		"Mirage", "Tide", "Circuit", "Echo", "Canvas", "Frequency",
	}
	tagPool = []string{
		"ambient", "synthwave", "portrait", "street", "lofi", "cinematic",
		"abstract", "documentary", "generative", "vocal", "landscape", "glitch",
	}
	spotterNames = []string{
		"pixelhound", "echoseeker", "framewatch", "tracer_09", "signalfox",
		"lenslurker", "beatfinder", "mosaic_eye",
	}
	locationNames = []string{
		"Berlin, DE", "Lagos, NG", "Tokyo, JP", "São Paulo, BR", "Toronto, CA",
		"Seoul, KR", "Lisbon, PT", "Austin, US", "Mumbai, IN", "Melbourne, AU",
	}
)

func (g *Generator) newID() string {
	return uuid.Must(uuid.NewRandomFromReader(g)).String()
}

func (g *Generator) newAddress() string {
	b := make([]byte, common.AddressLength)
	_, _ = g.Read(b)
	return common.BytesToAddress(b).Hex()
}

// creatorPool 每批資料抽一組創作者，讓不同 UCR 可以屬於同一位創作者
func (g *Generator) creatorPool(count int) []domain.Creator {
	size := min(len(creatorNames), count/3+1)
	perm := g.rnd.Perm(len(creatorNames))
	pool := make([]domain.Creator, size)
	for i := range pool {
		pool[i] = domain.Creator{
			Name:    creatorNames[perm[i]],
			Address: g.newAddress(),
		}
	}
	return pool
}

func (g *Generator) tags() []string {
	n := g.between(2, 4)
	perm := g.rnd.Perm(len(tagPool))
	out := make([]string, n)
	for i := range out {
		out[i] = tagPool[perm[i]]
	}
	return out
}

// ContentRecords 產生 count 筆 UCR，count <= 0 回傳空 slice
func (g *Generator) ContentRecords(count int) []domain.ContentRecord {
	if count <= 0 {
		return []domain.ContentRecord{}
	}

	now := g.clock.Now()
	pool := g.creatorPool(count)
	baseToken := g.between(1000, 9999)

	records := make([]domain.ContentRecord, count)
	for i := range records {
		id := g.newID()
		creator := pool[g.rnd.IntN(len(pool))]
		title := g.pick(titleAdjectives) + " " + g.pick(titleNouns)
		tokenID := baseToken + i

		records[i] = domain.ContentRecord{
			ID:          id,
			TokenID:     tokenID,
			Title:       title,
			Description: fmt.Sprintf("%s by %s, registered as UCR #%d.", title, creator.Name, tokenID),
			Creator:     creator,
			Stats: domain.RecordStats{
				Revenue:   round(g.rnd.Float64()*maxRevenue, 2),
				Sightings: g.rnd.IntN(maxSightings + 1),
				Licenses:  g.rnd.IntN(maxLicenses + 1),
			},
			Metadata:  domain.RecordMetadata{ContentType: g.pick(domain.ContentTypes)},
			Tags:      g.tags(),
			ImageURL:  fmt.Sprintf("https://picsum.photos/seed/%s/600/600", id[:8]),
			CreatedAt: now.Add(-time.Duration(g.rnd.Int64N(int64(recordMaxAge)))).Truncate(time.Second),
		}
	}
	return records
}

// Sightings 產生 count 筆偵測紀錄，每筆隨機指向 records 其中一筆。
// records 為空時回傳空 slice 而不是失敗。
func (g *Generator) Sightings(count int, records []domain.ContentRecord) []domain.Sighting {
	if count <= 0 || len(records) == 0 {
		return []domain.Sighting{}
	}

	now := g.clock.Now()
	sightings := make([]domain.Sighting, count)
	for i := range sightings {
		ucr := records[g.rnd.IntN(len(records))]
		spotter := g.pick(spotterNames)

		sightings[i] = domain.Sighting{
			ID:        g.newID(),
			UCRID:     ucr.ID,
			Timestamp: now.Add(-time.Duration(g.rnd.Int64N(int64(sightingWindow)))).Truncate(time.Second),
			Reward:    round(g.rnd.Float64()*maxReward, 4),
			Spotter: domain.Spotter{
				Name:   spotter,
				Avatar: "https://i.pravatar.cc/150?u=" + spotter,
			},
			Location:   domain.Location{Name: g.pick(locationNames)},
			Confidence: g.between(minConfidence, maxConfidence),
			Verified:   g.rnd.IntN(unverifiedRatio) != 0,
		}
	}
	return sightings
}
