// Package catalog holds the static, language-localized cafe catalog. The
// catalog is read-only at runtime; recommendation is a pure filter over it
// and the insertion order below is a contract (the chat flow always picks
// the first match).
package catalog

import (
	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

// localized is a pair of English and Korean strings.
type localized struct {
	en string
	ko string
}

func (l localized) in(lang string) string {
	if lang == "ko" {
		return l.ko
	}
	return l.en
}

type menuEntry struct {
	name  localized
	price string
	desc  localized
}

type cafeEntry struct {
	id          int
	name        localized
	cafeType    localized
	distance    string
	image       string
	description localized
	emotions    []entities.Emotion
	location    entities.Coordinates
	menu        []menuEntry
}

var cafes = []cafeEntry{
	{
		id:          1,
		name:        localized{"Onion Anguk", "어니언 안국"},
		cafeType:    localized{"Hanok Bakery Cafe", "한옥 베이커리 카페"},
		distance:    "1.2km",
		image:       "https://images.unsplash.com/photo-1596061320491-03080033c46d?auto=format&fit=crop&q=80&w=1000",
		description: localized{"Modern bread and coffee in a traditional Hanok.", "전통적인 한옥에서 즐기는 현대적인 빵과 커피."},
		emotions:    []entities.Emotion{entities.EmotionRelaxed, entities.EmotionHappy},
		location:    entities.Coordinates{Lat: 37.5768, Lng: 126.9856},
		menu: []menuEntry{
			{localized{"Pandoro", "팡도르"}, "₩5,000", localized{"Sweet snowy bread", "눈내린 듯한 달콤한 빵"}},
			{localized{"An-butter", "앙버터"}, "₩4,500", localized{"Butter and red bean", "버터와 팥의 조화"}},
		},
	},
	{
		id:          2,
		name:        localized{"Blue Bottle Samcheong", "블루보틀 삼청"},
		cafeType:    localized{"Specialty Coffee", "스페셜티 커피"},
		distance:    "2.5km",
		image:       "https://images.unsplash.com/photo-1500630459720-3a74535496c1?auto=format&fit=crop&q=80&w=1000",
		description: localized{"Premium coffee experience with Bukak Mountain view.", "북악산 뷰와 함께하는 프리미엄 커피 경험."},
		emotions:    []entities.Emotion{entities.EmotionTired, entities.EmotionExcited},
		location:    entities.Coordinates{Lat: 37.5807, Lng: 126.9806},
		menu: []menuEntry{
			{localized{"New Orleans", "뉴올리언스"}, "₩6,000", localized{"Chicory iced coffee", "치커리 풍미의 아이스 커피"}},
			{localized{"Single Origin", "싱글 오리진"}, "₩6,500", localized{"Hand drip", "핸드 드립"}},
		},
	},
	{
		id:          3,
		name:        localized{"Starbucks The Bukhansan", "스타벅스 더북한산점"},
		cafeType:    localized{"Scenic View Cafe", "뷰 맛집 카페"},
		distance:    "8.0km",
		image:       "https://images.unsplash.com/photo-1600093463592-29d99c4d96a6?auto=format&fit=crop&q=80&w=1000",
		description: localized{"Enjoy the magnificent panoramic view of Bukhansan.", "북한산의 웅장한 전경을 감상할 수 있는 곳."},
		emotions:    []entities.Emotion{entities.EmotionStressed, entities.EmotionRelaxed},
		location:    entities.Coordinates{Lat: 37.6482, Lng: 126.9479},
		menu: []menuEntry{
			{localized{"Apple Juice", "사과 주스"}, "₩5,000", localized{"Fresh juice", "상큼한 과일 주스"}},
			{localized{"Brunch Set", "브런치 세트"}, "₩12,000", localized{"Hearty meal", "든든한 한 끼"}},
		},
	},
	{
		id:          4,
		name:        localized{"Fritz Coffee Company", "프릳츠 도화"},
		cafeType:    localized{"Retro Vibe Cafe", "레트로 감성 카페"},
		distance:    "4.1km",
		image:       "https://images.unsplash.com/photo-1559496417-e7f25cb247f3?auto=format&fit=crop&q=80&w=1000",
		description: localized{"Vintage Korean aesthetic bakery cafe.", "빈티지한 한국적 감성의 베이커리 카페."},
		emotions:    []entities.Emotion{entities.EmotionExcited, entities.EmotionHappy, entities.EmotionTired},
		location:    entities.Coordinates{Lat: 37.5421, Lng: 126.9537},
		menu: []menuEntry{
			{localized{"Croissant", "크루아상"}, "₩3,800", localized{"Buttery flavor", "버터 풍미 가득"}},
			{localized{"Cold Brew", "콜드브루"}, "₩5,000", localized{"Clean taste", "깔끔한 맛"}},
		},
	},
	{
		id:          5,
		name:        localized{"Anthracite Hapjeong", "앤트러사이트 합정"},
		cafeType:    localized{"Industrial Cafe", "인더스트리얼 카페"},
		distance:    "6.2km",
		image:       "https://images.unsplash.com/photo-1493857676977-45535d04b46c?auto=format&fit=crop&q=80&w=1000",
		description: localized{"Sensational space renovated from an old factory.", "폐공장을 개조한 감각적인 공간."},
		emotions:    []entities.Emotion{entities.EmotionSad, entities.EmotionStressed},
		location:    entities.Coordinates{Lat: 37.5487, Lng: 126.9220},
		menu: []menuEntry{
			{localized{"Air and Dreams", "공기와 꿈"}, "₩6,000", localized{"Signature blend", "시그니처 블렌드"}},
			{localized{"Lemon Pound", "레몬 파운드"}, "₩4,500", localized{"Tangy dessert", "상큼한 디저트"}},
		},
	},
}

func (e cafeEntry) render(lang string) entities.Cafe {
	menu := make([]entities.MenuItem, len(e.menu))
	for i, m := range e.menu {
		menu[i] = entities.MenuItem{
			Name:  m.name.in(lang),
			Price: m.price,
			Desc:  m.desc.in(lang),
		}
	}
	emotions := make([]entities.Emotion, len(e.emotions))
	copy(emotions, e.emotions)

	return entities.Cafe{
		ID:          e.id,
		Name:        e.name.in(lang),
		Type:        e.cafeType.in(lang),
		Distance:    e.distance,
		Image:       e.image,
		Description: e.description.in(lang),
		Emotions:    emotions,
		Location:    e.location,
		Menu:        menu,
	}
}

// All returns every cafe in insertion order for the requested language.
func All(lang string) []entities.Cafe {
	out := make([]entities.Cafe, len(cafes))
	for i, e := range cafes {
		out[i] = e.render(lang)
	}
	return out
}

// ByEmotion returns the cafes tagged with the emotion, in insertion order.
func ByEmotion(emotion entities.Emotion, lang string) []entities.Cafe {
	var out []entities.Cafe
	for _, e := range cafes {
		cafe := e.render(lang)
		if cafe.HasEmotion(emotion) {
			out = append(out, cafe)
		}
	}
	return out
}

// ByID returns the cafe with the given ID, or nil when unknown.
func ByID(id int, lang string) *entities.Cafe {
	for _, e := range cafes {
		if e.id == id {
			cafe := e.render(lang)
			return &cafe
		}
	}
	return nil
}
