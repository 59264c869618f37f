package vocab

// The static word list. Entries are grouped per category; the Category field
// is filled in by All/ByCategory from the group it belongs to.
var groups = []struct {
	category Category
	entries  []Entry
}{
	{Greetings, greetings},
	{CoreVerbs, coreVerbs},
	{Numbers, numbers},
	{Family, family},
	{Food, food},
	{Colors, colors},
	{Time, timeWords},
	{Body, body},
	{Home, home},
	{Travel, travel},
	{School, school},
	{Adjectives, adjectives},
}

var greetings = []Entry{
	{German: "hallo", Vietnamese: "xin chào", VietnameseAlts: []string{"chào"}},
	{German: "tschüss", GermanAlts: []string{"auf Wiedersehen"}, Vietnamese: "tạm biệt"},
	{German: "danke", GermanAlts: []string{"danke schön"}, Vietnamese: "cảm ơn", VietnameseAlts: []string{"cám ơn"}},
	{German: "bitte", Vietnamese: "làm ơn"},
	{German: "ja", Vietnamese: "vâng", VietnameseAlts: []string{"dạ", "có"}},
	{German: "nein", Vietnamese: "không"},
	{German: "Entschuldigung", Vietnamese: "xin lỗi"},
	{German: "guten Morgen", Vietnamese: "chào buổi sáng"},
	{German: "guten Abend", Vietnamese: "chào buổi tối"},
	{German: "gute Nacht", Vietnamese: "chúc ngủ ngon"},
	{German: "willkommen", Vietnamese: "chào mừng"},
	{German: "wie geht es dir", GermanAlts: []string{"wie geht's"}, Vietnamese: "bạn khỏe không"},
}

var coreVerbs = []Entry{
	{German: "gehen", GermanAlts: []string{"laufen", "verlassen"}, Vietnamese: "đi"},
	{German: "essen", Vietnamese: "ăn"},
	{German: "trinken", Vietnamese: "uống"},
	{German: "schlafen", Vietnamese: "ngủ"},
	{German: "sprechen", GermanAlts: []string{"reden"}, Vietnamese: "nói"},
	{German: "lernen", Vietnamese: "học"},
	{German: "arbeiten", Vietnamese: "làm việc"},
	{German: "sehen", Vietnamese: "nhìn", VietnameseAlts: []string{"xem", "thấy"}},
	{German: "hören", Vietnamese: "nghe"},
	{German: "kommen", Vietnamese: "đến", VietnameseAlts: []string{"tới"}},
	{German: "machen", GermanAlts: []string{"tun"}, Vietnamese: "làm"},
	{German: "lieben", Vietnamese: "yêu"},
	{German: "kaufen", Vietnamese: "mua"},
	{German: "verkaufen", Vietnamese: "bán"},
}

var numbers = []Entry{
	{German: "eins", Vietnamese: "một"},
	{German: "zwei", Vietnamese: "hai"},
	{German: "drei", Vietnamese: "ba"},
	{German: "vier", Vietnamese: "bốn"},
	{German: "fünf", Vietnamese: "năm"},
	{German: "sechs", Vietnamese: "sáu"},
	{German: "sieben", Vietnamese: "bảy"},
	{German: "acht", Vietnamese: "tám"},
	{German: "neun", Vietnamese: "chín"},
	{German: "zehn", Vietnamese: "mười"},
	{German: "hundert", Vietnamese: "trăm", VietnameseAlts: []string{"một trăm"}},
	{German: "tausend", Vietnamese: "nghìn", VietnameseAlts: []string{"ngàn"}},
}

var family = []Entry{
	{German: "die Mutter", GermanAlts: []string{"Mama"}, Vietnamese: "mẹ", VietnameseAlts: []string{"má"}},
	{German: "der Vater", GermanAlts: []string{"Papa"}, Vietnamese: "bố", VietnameseAlts: []string{"cha", "ba"}},
	{German: "der Bruder", Vietnamese: "anh trai", VietnameseAlts: []string{"em trai"}},
	{German: "die Schwester", Vietnamese: "chị gái", VietnameseAlts: []string{"em gái"}},
	{German: "das Kind", Vietnamese: "đứa trẻ", VietnameseAlts: []string{"con"}},
	{German: "die Familie", Vietnamese: "gia đình"},
	{German: "der Freund", Vietnamese: "bạn", VietnameseAlts: []string{"bạn trai"}},
	{German: "der Mann", Vietnamese: "đàn ông", VietnameseAlts: []string{"chồng"}},
	{German: "die Frau", Vietnamese: "phụ nữ", VietnameseAlts: []string{"vợ"}},
	{German: "die Großmutter", GermanAlts: []string{"Oma"}, Vietnamese: "bà"},
	{German: "der Großvater", GermanAlts: []string{"Opa"}, Vietnamese: "ông"},
	{German: "das Baby", Vietnamese: "em bé"},
}

var food = []Entry{
	{German: "das Wasser", Vietnamese: "nước"},
	{German: "der Reis", Vietnamese: "cơm", VietnameseAlts: []string{"gạo"}},
	{German: "das Brot", Vietnamese: "bánh mì"},
	{German: "das Fleisch", Vietnamese: "thịt"},
	{German: "der Fisch", Vietnamese: "cá"},
	{German: "das Gemüse", Vietnamese: "rau"},
	{German: "das Obst", Vietnamese: "trái cây", VietnameseAlts: []string{"hoa quả"}},
	{German: "die Milch", Vietnamese: "sữa"},
	{German: "der Kaffee", Vietnamese: "cà phê"},
	{German: "der Tee", Vietnamese: "trà", VietnameseAlts: []string{"chè"}},
	{German: "die Suppe", Vietnamese: "súp", VietnameseAlts: []string{"canh"}},
	{German: "das Ei", Vietnamese: "trứng"},
	{German: "der Zucker", Vietnamese: "đường"},
}

var colors = []Entry{
	{German: "rot", Vietnamese: "đỏ", VietnameseAlts: []string{"màu đỏ"}},
	{German: "blau", Vietnamese: "xanh dương", VietnameseAlts: []string{"xanh lam"}},
	{German: "grün", Vietnamese: "xanh lá", VietnameseAlts: []string{"xanh lá cây"}},
	{German: "gelb", Vietnamese: "vàng", VietnameseAlts: []string{"màu vàng"}},
	{German: "schwarz", Vietnamese: "đen"},
	{German: "weiß", Vietnamese: "trắng"},
	{German: "braun", Vietnamese: "nâu"},
	{German: "grau", Vietnamese: "xám"},
	{German: "rosa", Vietnamese: "hồng"},
	{German: "lila", GermanAlts: []string{"violett"}, Vietnamese: "tím"},
	{German: "orange", Vietnamese: "cam", VietnameseAlts: []string{"màu cam"}},
}

var timeWords = []Entry{
	{German: "heute", Vietnamese: "hôm nay"},
	{German: "morgen", Vietnamese: "ngày mai"},
	{German: "gestern", Vietnamese: "hôm qua"},
	{German: "jetzt", Vietnamese: "bây giờ"},
	{German: "die Woche", Vietnamese: "tuần"},
	{German: "der Monat", Vietnamese: "tháng"},
	{German: "das Jahr", Vietnamese: "năm"},
	{German: "der Tag", Vietnamese: "ngày"},
	{German: "die Nacht", Vietnamese: "đêm"},
	{German: "die Stunde", Vietnamese: "giờ", VietnameseAlts: []string{"tiếng"}},
	{German: "die Minute", Vietnamese: "phút"},
	{German: "der Montag", Vietnamese: "thứ hai"},
	{German: "der Sonntag", Vietnamese: "chủ nhật"},
}

var body = []Entry{
	{German: "der Kopf", Vietnamese: "đầu"},
	{German: "das Auge", Vietnamese: "mắt"},
	{German: "die Nase", Vietnamese: "mũi"},
	{German: "der Mund", Vietnamese: "miệng"},
	{German: "die Hand", Vietnamese: "tay", VietnameseAlts: []string{"bàn tay"}},
	{German: "der Fuß", Vietnamese: "chân", VietnameseAlts: []string{"bàn chân"}},
	{German: "das Haar", Vietnamese: "tóc"},
	{German: "das Ohr", Vietnamese: "tai"},
	{German: "das Herz", Vietnamese: "tim", VietnameseAlts: []string{"trái tim"}},
	{German: "der Bauch", Vietnamese: "bụng"},
	{German: "der Rücken", Vietnamese: "lưng"},
	{German: "der Zahn", Vietnamese: "răng"},
}

var home = []Entry{
	{German: "das Haus", Vietnamese: "nhà", VietnameseAlts: []string{"ngôi nhà"}},
	{German: "die Tür", Vietnamese: "cửa"},
	{German: "das Fenster", Vietnamese: "cửa sổ"},
	{German: "der Tisch", Vietnamese: "bàn"},
	{German: "der Stuhl", Vietnamese: "ghế"},
	{German: "das Bett", Vietnamese: "giường"},
	{German: "die Küche", Vietnamese: "bếp", VietnameseAlts: []string{"nhà bếp"}},
	{German: "das Zimmer", Vietnamese: "phòng"},
	{German: "der Schlüssel", Vietnamese: "chìa khóa"},
	{German: "die Lampe", Vietnamese: "đèn"},
	{German: "der Garten", Vietnamese: "vườn"},
	{German: "das Badezimmer", Vietnamese: "phòng tắm"},
}

var travel = []Entry{
	{German: "die Straße", Vietnamese: "đường", VietnameseAlts: []string{"phố", "con đường"}},
	{German: "das Auto", Vietnamese: "ô tô", VietnameseAlts: []string{"xe hơi"}},
	{German: "das Fahrrad", Vietnamese: "xe đạp"},
	{German: "der Zug", Vietnamese: "tàu hỏa", VietnameseAlts: []string{"xe lửa"}},
	{German: "das Flugzeug", Vietnamese: "máy bay"},
	{German: "der Bahnhof", Vietnamese: "nhà ga", VietnameseAlts: []string{"ga"}},
	{German: "der Flughafen", Vietnamese: "sân bay"},
	{German: "das Hotel", Vietnamese: "khách sạn"},
	{German: "die Stadt", Vietnamese: "thành phố"},
	{German: "das Land", Vietnamese: "đất nước", VietnameseAlts: []string{"nước"}},
	{German: "die Karte", Vietnamese: "bản đồ", VietnameseAlts: []string{"thẻ"}},
	{German: "die Reise", Vietnamese: "chuyến đi", VietnameseAlts: []string{"du lịch"}},
}

var school = []Entry{
	{German: "die Schule", Vietnamese: "trường học", VietnameseAlts: []string{"trường"}},
	{German: "der Lehrer", GermanAlts: []string{"die Lehrerin"}, Vietnamese: "giáo viên", VietnameseAlts: []string{"thầy giáo", "cô giáo"}},
	{German: "der Schüler", Vietnamese: "học sinh"},
	{German: "das Buch", Vietnamese: "sách", VietnameseAlts: []string{"quyển sách"}},
	{German: "der Stift", Vietnamese: "bút"},
	{German: "die Arbeit", Vietnamese: "công việc", VietnameseAlts: []string{"việc làm"}},
	{German: "das Büro", Vietnamese: "văn phòng"},
	{German: "das Geld", Vietnamese: "tiền"},
	{German: "der Computer", Vietnamese: "máy tính"},
	{German: "das Papier", Vietnamese: "giấy"},
	{German: "die Prüfung", Vietnamese: "kỳ thi", VietnameseAlts: []string{"bài thi"}},
	{German: "die Universität", GermanAlts: []string{"die Uni"}, Vietnamese: "đại học", VietnameseAlts: []string{"trường đại học"}},
}

var adjectives = []Entry{
	{German: "groß", Vietnamese: "to", VietnameseAlts: []string{"lớn", "cao"}},
	{German: "klein", Vietnamese: "nhỏ", VietnameseAlts: []string{"bé"}},
	{German: "gut", Vietnamese: "tốt", VietnameseAlts: []string{"giỏi"}},
	{German: "schlecht", Vietnamese: "xấu", VietnameseAlts: []string{"tệ"}},
	{German: "schön", GermanAlts: []string{"hübsch"}, Vietnamese: "đẹp", VietnameseAlts: []string{"xinh"}},
	{German: "neu", Vietnamese: "mới"},
	{German: "alt", Vietnamese: "cũ", VietnameseAlts: []string{"già"}},
	{German: "schnell", Vietnamese: "nhanh"},
	{German: "langsam", Vietnamese: "chậm"},
	{German: "teuer", Vietnamese: "đắt", VietnameseAlts: []string{"mắc"}},
	{German: "billig", Vietnamese: "rẻ"},
	{German: "heiß", Vietnamese: "nóng"},
	{German: "kalt", Vietnamese: "lạnh"},
}
