package levels

// Level vocabulary sets used by difficulty matching and by the vocabulary
// extractor's fallback. These are seed lists; a deployment would swap in the
// full published CET/JLPT word lists through the same tables.

func cetVocabulary() map[string]map[string]struct{} {
	return map[string]map[string]struct{}{
		"CET-4": wordSet(
			"abandon", "ability", "able", "about", "above", "abroad", "absence", "absent",
			"absolute", "absorb", "abstract", "abuse", "academic", "accept", "access",
			"accident", "accompany", "accomplish", "according", "account", "accurate",
			"achieve", "acid", "acknowledge", "acquire", "across", "action", "active",
			"activity", "actual", "adapt", "add", "addition", "adequate", "adjust",
			"administration", "admit", "adopt", "adult", "advance", "advantage", "adventure",
			"advertise", "advice", "advise", "advocate", "affair", "affect", "afford",
			"afraid", "after", "afternoon", "again", "against", "agency", "agent",
			"agree", "agreement", "agriculture", "ahead", "aircraft", "airline", "airport",
		),
		"CET-5": wordSet(
			"elaborate", "elastic", "elbow", "elderly", "elect", "electric", "electronic",
			"elegant", "element", "elementary", "elephant", "elevate", "eliminate", "elite",
			"embarrass", "embrace", "emerge", "emergency", "emit", "emotion", "emphasis",
			"empire", "employ", "enable", "encounter", "encourage", "endure", "energy",
			"enforce", "engage", "engine", "engineer", "enhance", "enjoy", "enormous",
			"ensure", "enterprise", "entertain", "enthusiasm", "entire", "entitle", "entry",
			"environment", "episode", "equal", "equipment", "equivalent", "era", "error",
			"escape", "especially", "essential", "establish", "estate", "estimate", "ethnic",
			"professional", "development",
		),
		"CET-6": wordSet(
			"sophisticated", "specification", "specify", "specimen", "spectacular", "speculate",
			"sphere", "spiral", "spiritual", "spite", "splash", "split", "sponsor", "spontaneous",
			"spouse", "spray", "spread", "spring", "square", "squeeze", "stable", "stack",
			"staff", "stage", "stain", "stake", "stale", "stamp", "stance", "standard",
			"standpoint", "staple", "stare", "start", "startle", "state", "static", "station",
			"statistic", "status", "statute", "steady", "steal", "steam", "steel", "steep",
			"steer", "stem", "step", "stereo", "stern", "stick", "stiff", "stimulate",
			"sting", "stir", "stock", "stomach", "stone", "stop", "storage", "store",
			"comprehensive",
		),
	}
}

func jlptVocabulary() map[string]map[string]struct{} {
	return map[string]map[string]struct{}{
		"N5": wordSet(
			"学校", "先生", "学生", "友達", "家族", "お母さん", "お父さん", "兄弟", "姉妹",
			"本", "雑誌", "新聞", "テレビ", "映画", "音楽", "写真", "絵", "花", "木", "山", "海",
			"ともだち", "がっこう", "せんせい", "たべる", "のむ", "いく", "くる", "みる",
		),
		"N4": wordSet(
			"会社", "仕事", "会議", "計画", "問題", "解決", "方法", "結果", "経験", "技術",
			"研究", "開発", "製品", "サービス", "顧客", "市場", "競争", "成功", "失敗", "改善",
			"効果", "効率", "品質", "安全", "環境", "社会", "文化", "歴史", "伝統", "現代",
			"将来", "過去", "現在", "時間", "空間", "場所", "位置", "方向", "距離", "速度",
		),
		"N3": wordSet(
			"政治", "経済", "法律", "教育", "医療", "科学", "技術", "工業", "農業", "商業",
			"交通", "通信", "情報", "データ", "システム", "ネットワーク", "コンピュータ", "インターネット",
			"グローバル", "国際", "地域", "都市", "農村", "人口", "資源", "エネルギー", "環境問題",
			"気候", "天気", "自然", "動物", "植物", "生物", "化学", "物理", "数学", "統計",
			"努力", "忍耐", "研究",
		),
		"N2": wordSet(
			"哲学", "心理学", "社会学", "人類学", "言語学", "文学", "芸術", "美術", "音楽", "演劇",
			"建築", "設計", "創造", "想像", "理想", "現実", "抽象", "具体", "理論", "実践",
			"分析", "総合", "比較", "対照", "類似", "相違", "関係", "関連", "影響", "効果",
			"原因", "結果", "目的", "手段", "過程", "段階", "発展", "進歩", "変化", "改革",
		),
		"N1": wordSet(
			"概念", "観念", "思想", "理念", "価値観", "世界観", "人生観", "倫理", "道徳", "正義",
			"真理", "美", "善", "悪", "存在", "本質", "現象", "実体", "主観", "客観",
			"絶対", "相対", "普遍", "特殊", "一般", "個別", "全体", "部分", "統一", "分裂",
			"調和", "矛盾", "対立", "統合", "発達", "退化", "進化", "革命", "改革", "保守",
		),
	}
}
