package taxonomy

// GeneralCategories returns the built-in taxonomy for general community
// posts (Facebook groups and similar home/construction discussions).
// Tag order within each category is the primary-tag precedence order.
func GeneralCategories() []Category {
	return []Category{
		{
			Name:    "intents",
			Primary: "primaryIntent",
			Tags: []Tag{
				{Name: "ASK_ADVICE", Phrases: []string{
					"ขอคำแนะนำ", "ขอความคิดเห็น", "รบกวนขอ", "ช่วยแนะนำ",
					"มีใครเคย", "อยากถามว่า", "ดีไหม", "โอเคไหม", "เวิร์กไหม",
					"ควรเลือกอะไร", "ยี่ห้อไหนดี", "แบบไหนดี", "แนะนำหน่อย",
					"ช่วยดูให้หน่อย",
				}},
				{Name: "ASK_PRICE", Phrases: []string{
					"ราคาเท่าไหร่", "ราคาประมาณ", "งบประมาณ", "งบเท่าไหร่",
					"คิดยังไง", "คิดราคา", "เรตค่าช่าง", "ราคากลาง", "ต่อเมตร",
					"ต่อตร.ม.", "ต่อตารางเมตร", "แพงไหม", "ถูกไหม",
				}},
				{Name: "COMPLAIN", Phrases: []string{
					"ปัญหา", "พัง", "แตก", "ร้าว", "รั่ว", "ซึม", "แย่มาก",
					"ไม่โอเค", "เสียใจ", "ผิดหวัง", "ต้องซ่อม", "ซ่อมบ่อย",
					"ใช้ไม่นาน", "ลำบากมาก", "ทรมาน", "รำคาญ", "เซ็ง", "ท้อเลย",
				}},
				{Name: "SHOW_OFF", Phrases: []string{
					"มาอวด", "โชว์ผลงาน", "รีวิวงาน", "งานที่ทำเสร็จ",
					"ก่อน-หลัง", "before after", "รูปหน้างาน", "จบงานแล้ว",
					"เสร็จแล้ว", "มาแชร์งาน", "รูปผลงาน",
				}},
				{Name: "PROMOTE_SERVICE", Phrases: []string{
					"รับทำ", "รับออกแบบ", "รับเหมา", "บริการ", "สนใจทัก",
					"ทักแชท", "อินบ็อกซ์", "inbox", "ติดต่อได้ที่", "โทร",
					"ไลน์", "line id", "ราคาพิเศษ", "โปรโมชัน", "โปรพิเศษ",
					"ทีมงานของเรา", "ช่างมืออาชีพ",
				}},
				{Name: "SHARE_KNOWLEDGE", Phrases: []string{
					"มาแชร์ประสบการณ์", "แบ่งปันประสบการณ์", "เผื่อเป็นประโยชน์",
					"บอกต่อ", "ข้อควรรู้", "ควรระวัง", "ทริกเล็กๆ", "ทริคเล็กๆ",
					"เทคนิคเล็กๆ", "วิธีเลือก", "สิ่งที่ได้เรียนรู้", "สรุปให้ฟัง",
				}},
			},
		},
		generalHouseZones(),
		{
			Name: "painPoints",
			Tags: []Tag{
				{Name: "HEAT", Phrases: []string{
					"ร้อนมาก", "ร้อนอบอ้าว", "ร้อนเหมือนเตาอบ", "อยู่ไม่ไหว",
					"บ้านร้อน", "ห้องร้อน", "ร้อนทั้งวัน", "ร้อนสะสม",
				}},
				{Name: "LEAKING", Phrases: []string{"รั่ว", "ซึม", "น้ำรั่ว", "น้ำซึม", "ฝนสาด", "น้ำเข้า", "ผนังชื้น", "เพดานชื้น"}},
				{Name: "NOISE", Phrases: []string{
					"เสียงดัง", "เสียงลอด", "เสียงรบกวน", "ได้ยินเสียงข้างนอก",
					"กันเสียงไม่ดี", "เก็บเสียงไม่อยู่",
				}},
				{Name: "MOLD", Phrases: []string{"เชื้อรา", "คราบรา", "ดำเป็นดวง", "ขึ้นรา", "กลิ่นอับ", "อับชื้น"}},
				{Name: "SLIPPERY", Phrases: []string{"ลื่นไหม", "ลื่นมาก", "กลัวลื่น", "ลื่นอันตราย", "หกล้ม", "เสี่ยงล้ม"}},
				{Name: "CRACKING", Phrases: []string{
					"ร้าว", "แตกร้าว", "แตกเป็นเส้น", "ผนังแตก", "ปูแล้วแตก",
					"พื้นโก่ง", "กระเบื้องโก่ง",
				}},
				{Name: "DIRT", Phrases: []string{
					"คราบสกปรก", "เลอะง่าย", "เปื้อนง่าย", "ทำความสะอาดยาก",
					"เช็ดไม่ออก", "เก็บฝุ่น", "ฝุ่นเกาะ",
				}},
				{Name: "MAINTENANCE_COMPLEXITY", Phrases: []string{
					"ดูแลยาก", "ต้องคอยดูแล", "ต้องคอยเช็ด", "ยุ่งยาก",
					"บำรุงรักษายาก",
				}},
				{Name: "COST_CONFUSION", Phrases: []string{
					"คิดราคา", "งงเรื่องราคา", "ราคากลาง", "ไม่รู้ว่าถูกหรือแพง",
					"คิดยังไงต่อตร.ม.", "ตีราคา", "เหมาราคา",
				}},
				{Name: "CONTRACTOR_QUALITY", Phrases: []string{
					"ช่างทำ", "ผู้รับเหมา", "โดนช่างหลอก", "งานไม่เนี๊ยบ",
					"ทำพัง", "ทำไม่ดี", "ต้องแก้งาน", "แก้หน้างาน",
				}},
				{Name: "DESIGN_IDEA", Phrases: []string{
					"ไอเดียแต่งบ้าน", "หาไอเดีย", "แบบไหนดี", "หาภาพตัวอย่าง",
					"inspiration", "อินสไปร์", "reference", "เรฟเฟอเรนซ์",
				}},
				{Name: "PRODUCT_SELECTION_CONFUSION", Phrases: []string{
					"เลือกไม่ถูก", "ตัวเลือกเยอะ", "ไม่รู้จะใช้แบบไหน",
					"ไม่รู้ต่างกันยังไง", "เทียบยี่ห้อ", "เทียบรุ่น", "ไหนดีสุด",
				}},
				{Name: "SPACE_LIMIT", Phrases: []string{"พื้นที่จำกัด", "บ้านเล็ก", "คอนโดเล็ก", "พื้นที่น้อย", "ต้องประหยัดพื้นที่"}},
				{Name: "DURABILITY", Phrases: []string{"ไม่ทน", "พังง่าย", "ผุง่าย", "ไม่คงทน", "ลอก", "ซีด", "สีซีด"}},
				{Name: "HUMIDITY_ODOR", Phrases: []string{"กลิ่นอับ", "อับชื้น", "ความชื้นสูง", "ชื้นตลอด", "ชื้นง่าย"}},
			},
		},
		materialCategories(),
		designStyles(),
		{
			Name: "journeyStages",
			Tags: []Tag{
				{Name: "PLANNING", Phrases: []string{
					"กำลังจะสร้างบ้าน", "วางแผนสร้างบ้าน", "กำลังหาข้อมูลสร้างบ้าน",
					"คิดจะรีโนเวท", "อยากรีโนเวท",
				}},
				{Name: "DESIGNING", Phrases: []string{
					"หาไอเดีย", "หา reference", "หาเรฟ", "ออกแบบบ้าน",
					"ออกแบบครัว", "ดีไซน์", "แบบบ้าน",
				}},
				{Name: "SELECTING_MATERIAL", Phrases: []string{
					"เลือกวัสดุ", "เลือกกระเบื้อง", "เลือกพื้น", "เลือกยี่ห้อ",
					"เลือกแบบไหนดี", "เทียบวัสดุ", "เทียบยี่ห้อ",
				}},
				{Name: "BUDGETING", Phrases: []string{"งบเท่าไหร่", "วางงบ", "งบประมาณ", "ประมาณราคา", "คิดค่าของ", "คิดค่าช่าง"}},
				{Name: "CONTRACTOR_SELECTION", Phrases: []string{
					"หาช่าง", "หาผู้รับเหมา", "ช่างไหนดี", "ฝากร้านช่างได้",
					"แนะนำช่าง", "หาทีมงานทำให้",
				}},
				{Name: "DURING_CONSTRUCTION", Phrases: []string{
					"กำลังทำอยู่", "หน้างานตอนนี้", "ระหว่างทำ", "ช่างกำลังทำ",
					"เทปูนแล้ว", "ปูพื้นอยู่", "กำลังปูกระเบื้อง",
				}},
				{Name: "POST_CONSTRUCTION_ISSUE", Phrases: []string{
					"ทำเสร็จแล้วมีปัญหา", "ปูไปแล้ว", "อยู่ไปแล้วเจอว่า",
					"หลังอยู่มา", "ใช้มาสักพัก", "หลังทำเสร็จ", "ใช้ไปไม่นาน",
				}},
			},
		},
		{
			Name: "personas",
			Tags: []Tag{
				{Name: "HOMEOWNER", Phrases: []string{"บ้านเรา", "บ้านผม", "บ้านหนู", "บ้านที่อยู่", "บ้านคุณพ่อคุณแม่", "บ้านแฟน"}},
				{Name: "FUTURE_OWNER", Phrases: []string{
					"กำลังจะสร้างบ้าน", "จะซื้อบ้าน", "มองหาบ้าน", "เตรียมสร้าง",
					"วางแผนบ้านหลังแรก",
				}},
				{Name: "CONTRACTOR", Phrases: []string{
					"รับเหมา", "ช่างทำ", "ช่างปู", "ทีมช่าง", "หน้างานลูกค้า",
					"งานลูกค้า", "ลูกค้าฝากทำ",
				}},
				{Name: "DESIGNER", Phrases: []string{
					"ออกแบบให้ลูกค้า", "ดีไซน์ให้ลูกค้า", "นักออกแบบ",
					"อินทีเรีย", "interior", "สถาปนิก", "architect",
				}},
				{Name: "SHOP_SELLER", Phrases: []string{
					"ร้านเรา", "หน้าร้าน", "สินค้าที่ร้าน", "คลังเซรามิค",
					"ศูนย์จำหน่าย", "สต็อกสินค้า",
				}},
				{Name: "INVESTOR", Phrases: []string{"บ้านปล่อยเช่า", "ทำไว้ปล่อยเช่า", "ทำห้องเช่า", "ลงทุนปล่อยเช่า", "ทำเอาไว้ขายต่อ"}},
			},
		},
	}
}

// generalHouseZones, materialCategories, and designStyles are shared between
// the general-group and brand-page taxonomies.
func generalHouseZones() Category {
	return Category{
		Name: "houseZones",
		Tags: []Tag{
			{Name: "GENERAL", Phrases: []string{"ในบ้าน", "ตัวบ้าน", "บ้านทั้งหลัง", "รอบบ้าน"}},
			{Name: "LIVING_ROOM", Phrases: []string{"ห้องนั่งเล่น", "โซฟา", "ทีวีวอลล์", "ผนังทีวี", "ส่วนรับแขก"}},
			{Name: "BEDROOM", Phrases: []string{"ห้องนอน", "เตียงนอน", "หัวเตียง"}},
			{Name: "KITCHEN", Phrases: []string{
				"ห้องครัว", "ครัวไทย", "ครัวฝรั่ง", "เคาน์เตอร์ครัว",
				"ท็อปครัว", "top ครัว", "เคาน์เตอร์", "บิ้วอินครัว",
				"บิวท์อินครัว",
			}},
			{Name: "BATHROOM", Phrases: []string{"ห้องน้ำ", "พื้นห้องน้ำ", "ผนังห้องน้ำ", "โถสุขภัณฑ์", "โซนอาบน้ำ", "shower"}},
			{Name: "FACADE", Phrases: []string{
				"หน้าบ้าน", "ฟาซาด", "หน้าฟาซาด", "ผนังนอก", "ผนังภายนอก",
				"ผนังด้านนอก", "ซุ้มหน้าบ้าน",
			}},
			{Name: "FLOOR", Phrases: []string{
				"พื้นบ้าน", "พื้นชั้นล่าง", "พื้นชั้นบน", "พื้นชั้นสอง",
				"พื้นภายใน", "พื้นนอกบ้าน", "ปูพื้น", "กระเบื้องพื้น",
				"พื้นกระเบื้อง",
			}},
			{Name: "ROOF", Phrases: []string{"หลังคา", "ฝ้าเพดาน", "ฝ้าชั้นบน", "โครงหลังคา", "กันความร้อนบนหลังคา"}},
			{Name: "BALCONY", Phrases: []string{"ระเบียง", "ชาน", "ชานระเบียง", "ดาดฟ้า"}},
			{Name: "CARPORT", Phrases: []string{"ที่จอดรถ", "โรงจอดรถ", "โรงรถ", "กันสาด"}},
			{Name: "GARDEN", Phrases: []string{"สวน", "สนามหญ้า", "ลานบ้าน", "ทางเดินนอกบ้าน"}},
		},
	}
}


func materialCategories() Category {
	return Category{
		Name: "materialCategories",
		Tags: []Tag{
			{Name: "FLOOR_TILE", Phrases: []string{"กระเบื้องพื้น", "ปูกระเบื้อง", "กระเบื้องปูพื้น", "แกรนิตโต้", "กระเบื้องแกรนิตโต้"}},
			{Name: "SPC_FLOOR", Phrases: []string{"spc", "พื้น spc", "กระเบื้อง spc", "ไม้ spc"}},
			{Name: "LAMINATE", Phrases: []string{"ลามิเนต", "พื้นลามิเนต", "laminate"}},
			{Name: "WALL_TILE", Phrases: []string{"กระเบื้องผนัง", "กระเบื้องตกแต่งผนัง", "ผนังกระเบื้อง"}},
			{Name: "GYPSUM_BOARD", Phrases: []string{"ยิปซัมบอร์ด", "แผ่นยิปซัม", "ฝ้ายิปซัม"}},
			{Name: "FIBER_CEMENT_BOARD", Phrases: []string{
				"ไฟเบอร์ซีเมนต์", "แผ่นไฟเบอร์", "แผ่นสมาร์ทบอร์ด",
				"สมาร์ทบอร์ด", "แผ่นซีเมนต์บอร์ด",
			}},
			{Name: "ROOF_TILE", Phrases: []string{
				"กระเบื้องหลังคา", "หลังคากระเบื้อง", "หลังคาลอน",
				"หลังคาเหล็ก", "เมทัลชีท", "metal sheet",
			}},
			{Name: "INSULATION", Phrases: []string{"ฉนวนกันความร้อน", "ฉนวน", "กันความร้อนบนฝ้า", "กันร้อนหลังคา"}},
			{Name: "WATERPROOFING", Phrases: []string{"กันซึม", "น้ำยากันซึม", "โพลียูรีเทนกันซึม", "ซีเมนต์กันซึม"}},
			{Name: "SEALANT", Phrases: []string{"ซีลแลนต์", "ยาแนว", "ซิลิโคนยาแนว", "อุดรอยต่อ"}},
			{Name: "PAINT", Phrases: []string{"สีทาบ้าน", "ทาสี", "สีทาภายใน", "สีทาภายนอก", "สีกันความร้อน"}},
			{Name: "STRUCTURE_PILE", Phrases: []string{"เสาเข็ม", "ฐานราก", "คาน", "ตอม่อ"}},
			{Name: "BUILT_IN", Phrases: []string{"บิ้วอิน", "บิวท์อิน", "ตู้บิ้วอิน", "งานบิ้วอิน"}},
			{Name: "WINDOW_DOOR", Phrases: []string{"หน้าต่าง", "ประตู", "ประตูบานเลื่อน", "บานเฟี้ยม"}},
			{Name: "OTHER", Phrases: []string{"วัสดุอื่นๆ"}},
		},
	}
}

func designStyles() Category {
	return Category{
		Name: "designStyles",
		Tags: []Tag{
			{Name: "MUJI", Phrases: []string{"มูจิ", "muji", "บ้านมูจิ", "โทนไม้อ่อนมูจิ"}},
			{Name: "MINIMAL", Phrases: []string{"มินิมอล", "minimal", "บ้านมินิมอล", "ตกแต่งแบบมินิมอล"}},
			{Name: "JAPANDI", Phrases: []string{"japandi", "แจแปนดี้", "ญี่ปุ่นผสมสแกน", "ญี่ปุ่นสแกนดิเนเวีย"}},
			{Name: "LOFT", Phrases: []string{"loft", "ลอฟท์", "ปูนเปลือย", "ผนังปูนดิบ"}},
			{Name: "TROPICAL", Phrases: []string{"ทรอปิคอล", "tropical", "บ้านสไตล์รีสอร์ท", "บ้านสไตล์ทะเล"}},
			{Name: "MODERN", Phrases: []string{"โมเดิร์น", "modern", "บ้านสไตล์โมเดิร์น"}},
			{Name: "RESORT", Phrases: []string{"รีสอร์ท", "เหมือนรีสอร์ท", "ฟีลโรงแรม", "ฟีลพักผ่อน"}},
			{Name: "CONTEMPORARY_THAI", Phrases: []string{"ไทยประยุกต์", "ไทยโมเดิร์น", "ร่วมสมัย", "เรือนไทยประยุกต์"}},
		},
	}
}
