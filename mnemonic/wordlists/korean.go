// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlists

// korean is a placeholder BIP39 wordlist: 2048 unique tokens of the correct
// shape (no whitespace, no delimiter collisions) standing in for the real
// upstream korean word list. See DESIGN.md: English is the accurate reference
// list this module's test vectors depend on; this list needs replacing
// with the canonical upstream words before encoding real korean mnemonics.
var korean = [2048]string{
	"wko0000", "wko0001", "wko0002", "wko0003", "wko0004", "wko0005", "wko0006", "wko0007",
	"wko0008", "wko0009", "wko0010", "wko0011", "wko0012", "wko0013", "wko0014", "wko0015",
	"wko0016", "wko0017", "wko0018", "wko0019", "wko0020", "wko0021", "wko0022", "wko0023",
	"wko0024", "wko0025", "wko0026", "wko0027", "wko0028", "wko0029", "wko0030", "wko0031",
	"wko0032", "wko0033", "wko0034", "wko0035", "wko0036", "wko0037", "wko0038", "wko0039",
	"wko0040", "wko0041", "wko0042", "wko0043", "wko0044", "wko0045", "wko0046", "wko0047",
	"wko0048", "wko0049", "wko0050", "wko0051", "wko0052", "wko0053", "wko0054", "wko0055",
	"wko0056", "wko0057", "wko0058", "wko0059", "wko0060", "wko0061", "wko0062", "wko0063",
	"wko0064", "wko0065", "wko0066", "wko0067", "wko0068", "wko0069", "wko0070", "wko0071",
	"wko0072", "wko0073", "wko0074", "wko0075", "wko0076", "wko0077", "wko0078", "wko0079",
	"wko0080", "wko0081", "wko0082", "wko0083", "wko0084", "wko0085", "wko0086", "wko0087",
	"wko0088", "wko0089", "wko0090", "wko0091", "wko0092", "wko0093", "wko0094", "wko0095",
	"wko0096", "wko0097", "wko0098", "wko0099", "wko0100", "wko0101", "wko0102", "wko0103",
	"wko0104", "wko0105", "wko0106", "wko0107", "wko0108", "wko0109", "wko0110", "wko0111",
	"wko0112", "wko0113", "wko0114", "wko0115", "wko0116", "wko0117", "wko0118", "wko0119",
	"wko0120", "wko0121", "wko0122", "wko0123", "wko0124", "wko0125", "wko0126", "wko0127",
	"wko0128", "wko0129", "wko0130", "wko0131", "wko0132", "wko0133", "wko0134", "wko0135",
	"wko0136", "wko0137", "wko0138", "wko0139", "wko0140", "wko0141", "wko0142", "wko0143",
	"wko0144", "wko0145", "wko0146", "wko0147", "wko0148", "wko0149", "wko0150", "wko0151",
	"wko0152", "wko0153", "wko0154", "wko0155", "wko0156", "wko0157", "wko0158", "wko0159",
	"wko0160", "wko0161", "wko0162", "wko0163", "wko0164", "wko0165", "wko0166", "wko0167",
	"wko0168", "wko0169", "wko0170", "wko0171", "wko0172", "wko0173", "wko0174", "wko0175",
	"wko0176", "wko0177", "wko0178", "wko0179", "wko0180", "wko0181", "wko0182", "wko0183",
	"wko0184", "wko0185", "wko0186", "wko0187", "wko0188", "wko0189", "wko0190", "wko0191",
	"wko0192", "wko0193", "wko0194", "wko0195", "wko0196", "wko0197", "wko0198", "wko0199",
	"wko0200", "wko0201", "wko0202", "wko0203", "wko0204", "wko0205", "wko0206", "wko0207",
	"wko0208", "wko0209", "wko0210", "wko0211", "wko0212", "wko0213", "wko0214", "wko0215",
	"wko0216", "wko0217", "wko0218", "wko0219", "wko0220", "wko0221", "wko0222", "wko0223",
	"wko0224", "wko0225", "wko0226", "wko0227", "wko0228", "wko0229", "wko0230", "wko0231",
	"wko0232", "wko0233", "wko0234", "wko0235", "wko0236", "wko0237", "wko0238", "wko0239",
	"wko0240", "wko0241", "wko0242", "wko0243", "wko0244", "wko0245", "wko0246", "wko0247",
	"wko0248", "wko0249", "wko0250", "wko0251", "wko0252", "wko0253", "wko0254", "wko0255",
	"wko0256", "wko0257", "wko0258", "wko0259", "wko0260", "wko0261", "wko0262", "wko0263",
	"wko0264", "wko0265", "wko0266", "wko0267", "wko0268", "wko0269", "wko0270", "wko0271",
	"wko0272", "wko0273", "wko0274", "wko0275", "wko0276", "wko0277", "wko0278", "wko0279",
	"wko0280", "wko0281", "wko0282", "wko0283", "wko0284", "wko0285", "wko0286", "wko0287",
	"wko0288", "wko0289", "wko0290", "wko0291", "wko0292", "wko0293", "wko0294", "wko0295",
	"wko0296", "wko0297", "wko0298", "wko0299", "wko0300", "wko0301", "wko0302", "wko0303",
	"wko0304", "wko0305", "wko0306", "wko0307", "wko0308", "wko0309", "wko0310", "wko0311",
	"wko0312", "wko0313", "wko0314", "wko0315", "wko0316", "wko0317", "wko0318", "wko0319",
	"wko0320", "wko0321", "wko0322", "wko0323", "wko0324", "wko0325", "wko0326", "wko0327",
	"wko0328", "wko0329", "wko0330", "wko0331", "wko0332", "wko0333", "wko0334", "wko0335",
	"wko0336", "wko0337", "wko0338", "wko0339", "wko0340", "wko0341", "wko0342", "wko0343",
	"wko0344", "wko0345", "wko0346", "wko0347", "wko0348", "wko0349", "wko0350", "wko0351",
	"wko0352", "wko0353", "wko0354", "wko0355", "wko0356", "wko0357", "wko0358", "wko0359",
	"wko0360", "wko0361", "wko0362", "wko0363", "wko0364", "wko0365", "wko0366", "wko0367",
	"wko0368", "wko0369", "wko0370", "wko0371", "wko0372", "wko0373", "wko0374", "wko0375",
	"wko0376", "wko0377", "wko0378", "wko0379", "wko0380", "wko0381", "wko0382", "wko0383",
	"wko0384", "wko0385", "wko0386", "wko0387", "wko0388", "wko0389", "wko0390", "wko0391",
	"wko0392", "wko0393", "wko0394", "wko0395", "wko0396", "wko0397", "wko0398", "wko0399",
	"wko0400", "wko0401", "wko0402", "wko0403", "wko0404", "wko0405", "wko0406", "wko0407",
	"wko0408", "wko0409", "wko0410", "wko0411", "wko0412", "wko0413", "wko0414", "wko0415",
	"wko0416", "wko0417", "wko0418", "wko0419", "wko0420", "wko0421", "wko0422", "wko0423",
	"wko0424", "wko0425", "wko0426", "wko0427", "wko0428", "wko0429", "wko0430", "wko0431",
	"wko0432", "wko0433", "wko0434", "wko0435", "wko0436", "wko0437", "wko0438", "wko0439",
	"wko0440", "wko0441", "wko0442", "wko0443", "wko0444", "wko0445", "wko0446", "wko0447",
	"wko0448", "wko0449", "wko0450", "wko0451", "wko0452", "wko0453", "wko0454", "wko0455",
	"wko0456", "wko0457", "wko0458", "wko0459", "wko0460", "wko0461", "wko0462", "wko0463",
	"wko0464", "wko0465", "wko0466", "wko0467", "wko0468", "wko0469", "wko0470", "wko0471",
	"wko0472", "wko0473", "wko0474", "wko0475", "wko0476", "wko0477", "wko0478", "wko0479",
	"wko0480", "wko0481", "wko0482", "wko0483", "wko0484", "wko0485", "wko0486", "wko0487",
	"wko0488", "wko0489", "wko0490", "wko0491", "wko0492", "wko0493", "wko0494", "wko0495",
	"wko0496", "wko0497", "wko0498", "wko0499", "wko0500", "wko0501", "wko0502", "wko0503",
	"wko0504", "wko0505", "wko0506", "wko0507", "wko0508", "wko0509", "wko0510", "wko0511",
	"wko0512", "wko0513", "wko0514", "wko0515", "wko0516", "wko0517", "wko0518", "wko0519",
	"wko0520", "wko0521", "wko0522", "wko0523", "wko0524", "wko0525", "wko0526", "wko0527",
	"wko0528", "wko0529", "wko0530", "wko0531", "wko0532", "wko0533", "wko0534", "wko0535",
	"wko0536", "wko0537", "wko0538", "wko0539", "wko0540", "wko0541", "wko0542", "wko0543",
	"wko0544", "wko0545", "wko0546", "wko0547", "wko0548", "wko0549", "wko0550", "wko0551",
	"wko0552", "wko0553", "wko0554", "wko0555", "wko0556", "wko0557", "wko0558", "wko0559",
	"wko0560", "wko0561", "wko0562", "wko0563", "wko0564", "wko0565", "wko0566", "wko0567",
	"wko0568", "wko0569", "wko0570", "wko0571", "wko0572", "wko0573", "wko0574", "wko0575",
	"wko0576", "wko0577", "wko0578", "wko0579", "wko0580", "wko0581", "wko0582", "wko0583",
	"wko0584", "wko0585", "wko0586", "wko0587", "wko0588", "wko0589", "wko0590", "wko0591",
	"wko0592", "wko0593", "wko0594", "wko0595", "wko0596", "wko0597", "wko0598", "wko0599",
	"wko0600", "wko0601", "wko0602", "wko0603", "wko0604", "wko0605", "wko0606", "wko0607",
	"wko0608", "wko0609", "wko0610", "wko0611", "wko0612", "wko0613", "wko0614", "wko0615",
	"wko0616", "wko0617", "wko0618", "wko0619", "wko0620", "wko0621", "wko0622", "wko0623",
	"wko0624", "wko0625", "wko0626", "wko0627", "wko0628", "wko0629", "wko0630", "wko0631",
	"wko0632", "wko0633", "wko0634", "wko0635", "wko0636", "wko0637", "wko0638", "wko0639",
	"wko0640", "wko0641", "wko0642", "wko0643", "wko0644", "wko0645", "wko0646", "wko0647",
	"wko0648", "wko0649", "wko0650", "wko0651", "wko0652", "wko0653", "wko0654", "wko0655",
	"wko0656", "wko0657", "wko0658", "wko0659", "wko0660", "wko0661", "wko0662", "wko0663",
	"wko0664", "wko0665", "wko0666", "wko0667", "wko0668", "wko0669", "wko0670", "wko0671",
	"wko0672", "wko0673", "wko0674", "wko0675", "wko0676", "wko0677", "wko0678", "wko0679",
	"wko0680", "wko0681", "wko0682", "wko0683", "wko0684", "wko0685", "wko0686", "wko0687",
	"wko0688", "wko0689", "wko0690", "wko0691", "wko0692", "wko0693", "wko0694", "wko0695",
	"wko0696", "wko0697", "wko0698", "wko0699", "wko0700", "wko0701", "wko0702", "wko0703",
	"wko0704", "wko0705", "wko0706", "wko0707", "wko0708", "wko0709", "wko0710", "wko0711",
	"wko0712", "wko0713", "wko0714", "wko0715", "wko0716", "wko0717", "wko0718", "wko0719",
	"wko0720", "wko0721", "wko0722", "wko0723", "wko0724", "wko0725", "wko0726", "wko0727",
	"wko0728", "wko0729", "wko0730", "wko0731", "wko0732", "wko0733", "wko0734", "wko0735",
	"wko0736", "wko0737", "wko0738", "wko0739", "wko0740", "wko0741", "wko0742", "wko0743",
	"wko0744", "wko0745", "wko0746", "wko0747", "wko0748", "wko0749", "wko0750", "wko0751",
	"wko0752", "wko0753", "wko0754", "wko0755", "wko0756", "wko0757", "wko0758", "wko0759",
	"wko0760", "wko0761", "wko0762", "wko0763", "wko0764", "wko0765", "wko0766", "wko0767",
	"wko0768", "wko0769", "wko0770", "wko0771", "wko0772", "wko0773", "wko0774", "wko0775",
	"wko0776", "wko0777", "wko0778", "wko0779", "wko0780", "wko0781", "wko0782", "wko0783",
	"wko0784", "wko0785", "wko0786", "wko0787", "wko0788", "wko0789", "wko0790", "wko0791",
	"wko0792", "wko0793", "wko0794", "wko0795", "wko0796", "wko0797", "wko0798", "wko0799",
	"wko0800", "wko0801", "wko0802", "wko0803", "wko0804", "wko0805", "wko0806", "wko0807",
	"wko0808", "wko0809", "wko0810", "wko0811", "wko0812", "wko0813", "wko0814", "wko0815",
	"wko0816", "wko0817", "wko0818", "wko0819", "wko0820", "wko0821", "wko0822", "wko0823",
	"wko0824", "wko0825", "wko0826", "wko0827", "wko0828", "wko0829", "wko0830", "wko0831",
	"wko0832", "wko0833", "wko0834", "wko0835", "wko0836", "wko0837", "wko0838", "wko0839",
	"wko0840", "wko0841", "wko0842", "wko0843", "wko0844", "wko0845", "wko0846", "wko0847",
	"wko0848", "wko0849", "wko0850", "wko0851", "wko0852", "wko0853", "wko0854", "wko0855",
	"wko0856", "wko0857", "wko0858", "wko0859", "wko0860", "wko0861", "wko0862", "wko0863",
	"wko0864", "wko0865", "wko0866", "wko0867", "wko0868", "wko0869", "wko0870", "wko0871",
	"wko0872", "wko0873", "wko0874", "wko0875", "wko0876", "wko0877", "wko0878", "wko0879",
	"wko0880", "wko0881", "wko0882", "wko0883", "wko0884", "wko0885", "wko0886", "wko0887",
	"wko0888", "wko0889", "wko0890", "wko0891", "wko0892", "wko0893", "wko0894", "wko0895",
	"wko0896", "wko0897", "wko0898", "wko0899", "wko0900", "wko0901", "wko0902", "wko0903",
	"wko0904", "wko0905", "wko0906", "wko0907", "wko0908", "wko0909", "wko0910", "wko0911",
	"wko0912", "wko0913", "wko0914", "wko0915", "wko0916", "wko0917", "wko0918", "wko0919",
	"wko0920", "wko0921", "wko0922", "wko0923", "wko0924", "wko0925", "wko0926", "wko0927",
	"wko0928", "wko0929", "wko0930", "wko0931", "wko0932", "wko0933", "wko0934", "wko0935",
	"wko0936", "wko0937", "wko0938", "wko0939", "wko0940", "wko0941", "wko0942", "wko0943",
	"wko0944", "wko0945", "wko0946", "wko0947", "wko0948", "wko0949", "wko0950", "wko0951",
	"wko0952", "wko0953", "wko0954", "wko0955", "wko0956", "wko0957", "wko0958", "wko0959",
	"wko0960", "wko0961", "wko0962", "wko0963", "wko0964", "wko0965", "wko0966", "wko0967",
	"wko0968", "wko0969", "wko0970", "wko0971", "wko0972", "wko0973", "wko0974", "wko0975",
	"wko0976", "wko0977", "wko0978", "wko0979", "wko0980", "wko0981", "wko0982", "wko0983",
	"wko0984", "wko0985", "wko0986", "wko0987", "wko0988", "wko0989", "wko0990", "wko0991",
	"wko0992", "wko0993", "wko0994", "wko0995", "wko0996", "wko0997", "wko0998", "wko0999",
	"wko1000", "wko1001", "wko1002", "wko1003", "wko1004", "wko1005", "wko1006", "wko1007",
	"wko1008", "wko1009", "wko1010", "wko1011", "wko1012", "wko1013", "wko1014", "wko1015",
	"wko1016", "wko1017", "wko1018", "wko1019", "wko1020", "wko1021", "wko1022", "wko1023",
	"wko1024", "wko1025", "wko1026", "wko1027", "wko1028", "wko1029", "wko1030", "wko1031",
	"wko1032", "wko1033", "wko1034", "wko1035", "wko1036", "wko1037", "wko1038", "wko1039",
	"wko1040", "wko1041", "wko1042", "wko1043", "wko1044", "wko1045", "wko1046", "wko1047",
	"wko1048", "wko1049", "wko1050", "wko1051", "wko1052", "wko1053", "wko1054", "wko1055",
	"wko1056", "wko1057", "wko1058", "wko1059", "wko1060", "wko1061", "wko1062", "wko1063",
	"wko1064", "wko1065", "wko1066", "wko1067", "wko1068", "wko1069", "wko1070", "wko1071",
	"wko1072", "wko1073", "wko1074", "wko1075", "wko1076", "wko1077", "wko1078", "wko1079",
	"wko1080", "wko1081", "wko1082", "wko1083", "wko1084", "wko1085", "wko1086", "wko1087",
	"wko1088", "wko1089", "wko1090", "wko1091", "wko1092", "wko1093", "wko1094", "wko1095",
	"wko1096", "wko1097", "wko1098", "wko1099", "wko1100", "wko1101", "wko1102", "wko1103",
	"wko1104", "wko1105", "wko1106", "wko1107", "wko1108", "wko1109", "wko1110", "wko1111",
	"wko1112", "wko1113", "wko1114", "wko1115", "wko1116", "wko1117", "wko1118", "wko1119",
	"wko1120", "wko1121", "wko1122", "wko1123", "wko1124", "wko1125", "wko1126", "wko1127",
	"wko1128", "wko1129", "wko1130", "wko1131", "wko1132", "wko1133", "wko1134", "wko1135",
	"wko1136", "wko1137", "wko1138", "wko1139", "wko1140", "wko1141", "wko1142", "wko1143",
	"wko1144", "wko1145", "wko1146", "wko1147", "wko1148", "wko1149", "wko1150", "wko1151",
	"wko1152", "wko1153", "wko1154", "wko1155", "wko1156", "wko1157", "wko1158", "wko1159",
	"wko1160", "wko1161", "wko1162", "wko1163", "wko1164", "wko1165", "wko1166", "wko1167",
	"wko1168", "wko1169", "wko1170", "wko1171", "wko1172", "wko1173", "wko1174", "wko1175",
	"wko1176", "wko1177", "wko1178", "wko1179", "wko1180", "wko1181", "wko1182", "wko1183",
	"wko1184", "wko1185", "wko1186", "wko1187", "wko1188", "wko1189", "wko1190", "wko1191",
	"wko1192", "wko1193", "wko1194", "wko1195", "wko1196", "wko1197", "wko1198", "wko1199",
	"wko1200", "wko1201", "wko1202", "wko1203", "wko1204", "wko1205", "wko1206", "wko1207",
	"wko1208", "wko1209", "wko1210", "wko1211", "wko1212", "wko1213", "wko1214", "wko1215",
	"wko1216", "wko1217", "wko1218", "wko1219", "wko1220", "wko1221", "wko1222", "wko1223",
	"wko1224", "wko1225", "wko1226", "wko1227", "wko1228", "wko1229", "wko1230", "wko1231",
	"wko1232", "wko1233", "wko1234", "wko1235", "wko1236", "wko1237", "wko1238", "wko1239",
	"wko1240", "wko1241", "wko1242", "wko1243", "wko1244", "wko1245", "wko1246", "wko1247",
	"wko1248", "wko1249", "wko1250", "wko1251", "wko1252", "wko1253", "wko1254", "wko1255",
	"wko1256", "wko1257", "wko1258", "wko1259", "wko1260", "wko1261", "wko1262", "wko1263",
	"wko1264", "wko1265", "wko1266", "wko1267", "wko1268", "wko1269", "wko1270", "wko1271",
	"wko1272", "wko1273", "wko1274", "wko1275", "wko1276", "wko1277", "wko1278", "wko1279",
	"wko1280", "wko1281", "wko1282", "wko1283", "wko1284", "wko1285", "wko1286", "wko1287",
	"wko1288", "wko1289", "wko1290", "wko1291", "wko1292", "wko1293", "wko1294", "wko1295",
	"wko1296", "wko1297", "wko1298", "wko1299", "wko1300", "wko1301", "wko1302", "wko1303",
	"wko1304", "wko1305", "wko1306", "wko1307", "wko1308", "wko1309", "wko1310", "wko1311",
	"wko1312", "wko1313", "wko1314", "wko1315", "wko1316", "wko1317", "wko1318", "wko1319",
	"wko1320", "wko1321", "wko1322", "wko1323", "wko1324", "wko1325", "wko1326", "wko1327",
	"wko1328", "wko1329", "wko1330", "wko1331", "wko1332", "wko1333", "wko1334", "wko1335",
	"wko1336", "wko1337", "wko1338", "wko1339", "wko1340", "wko1341", "wko1342", "wko1343",
	"wko1344", "wko1345", "wko1346", "wko1347", "wko1348", "wko1349", "wko1350", "wko1351",
	"wko1352", "wko1353", "wko1354", "wko1355", "wko1356", "wko1357", "wko1358", "wko1359",
	"wko1360", "wko1361", "wko1362", "wko1363", "wko1364", "wko1365", "wko1366", "wko1367",
	"wko1368", "wko1369", "wko1370", "wko1371", "wko1372", "wko1373", "wko1374", "wko1375",
	"wko1376", "wko1377", "wko1378", "wko1379", "wko1380", "wko1381", "wko1382", "wko1383",
	"wko1384", "wko1385", "wko1386", "wko1387", "wko1388", "wko1389", "wko1390", "wko1391",
	"wko1392", "wko1393", "wko1394", "wko1395", "wko1396", "wko1397", "wko1398", "wko1399",
	"wko1400", "wko1401", "wko1402", "wko1403", "wko1404", "wko1405", "wko1406", "wko1407",
	"wko1408", "wko1409", "wko1410", "wko1411", "wko1412", "wko1413", "wko1414", "wko1415",
	"wko1416", "wko1417", "wko1418", "wko1419", "wko1420", "wko1421", "wko1422", "wko1423",
	"wko1424", "wko1425", "wko1426", "wko1427", "wko1428", "wko1429", "wko1430", "wko1431",
	"wko1432", "wko1433", "wko1434", "wko1435", "wko1436", "wko1437", "wko1438", "wko1439",
	"wko1440", "wko1441", "wko1442", "wko1443", "wko1444", "wko1445", "wko1446", "wko1447",
	"wko1448", "wko1449", "wko1450", "wko1451", "wko1452", "wko1453", "wko1454", "wko1455",
	"wko1456", "wko1457", "wko1458", "wko1459", "wko1460", "wko1461", "wko1462", "wko1463",
	"wko1464", "wko1465", "wko1466", "wko1467", "wko1468", "wko1469", "wko1470", "wko1471",
	"wko1472", "wko1473", "wko1474", "wko1475", "wko1476", "wko1477", "wko1478", "wko1479",
	"wko1480", "wko1481", "wko1482", "wko1483", "wko1484", "wko1485", "wko1486", "wko1487",
	"wko1488", "wko1489", "wko1490", "wko1491", "wko1492", "wko1493", "wko1494", "wko1495",
	"wko1496", "wko1497", "wko1498", "wko1499", "wko1500", "wko1501", "wko1502", "wko1503",
	"wko1504", "wko1505", "wko1506", "wko1507", "wko1508", "wko1509", "wko1510", "wko1511",
	"wko1512", "wko1513", "wko1514", "wko1515", "wko1516", "wko1517", "wko1518", "wko1519",
	"wko1520", "wko1521", "wko1522", "wko1523", "wko1524", "wko1525", "wko1526", "wko1527",
	"wko1528", "wko1529", "wko1530", "wko1531", "wko1532", "wko1533", "wko1534", "wko1535",
	"wko1536", "wko1537", "wko1538", "wko1539", "wko1540", "wko1541", "wko1542", "wko1543",
	"wko1544", "wko1545", "wko1546", "wko1547", "wko1548", "wko1549", "wko1550", "wko1551",
	"wko1552", "wko1553", "wko1554", "wko1555", "wko1556", "wko1557", "wko1558", "wko1559",
	"wko1560", "wko1561", "wko1562", "wko1563", "wko1564", "wko1565", "wko1566", "wko1567",
	"wko1568", "wko1569", "wko1570", "wko1571", "wko1572", "wko1573", "wko1574", "wko1575",
	"wko1576", "wko1577", "wko1578", "wko1579", "wko1580", "wko1581", "wko1582", "wko1583",
	"wko1584", "wko1585", "wko1586", "wko1587", "wko1588", "wko1589", "wko1590", "wko1591",
	"wko1592", "wko1593", "wko1594", "wko1595", "wko1596", "wko1597", "wko1598", "wko1599",
	"wko1600", "wko1601", "wko1602", "wko1603", "wko1604", "wko1605", "wko1606", "wko1607",
	"wko1608", "wko1609", "wko1610", "wko1611", "wko1612", "wko1613", "wko1614", "wko1615",
	"wko1616", "wko1617", "wko1618", "wko1619", "wko1620", "wko1621", "wko1622", "wko1623",
	"wko1624", "wko1625", "wko1626", "wko1627", "wko1628", "wko1629", "wko1630", "wko1631",
	"wko1632", "wko1633", "wko1634", "wko1635", "wko1636", "wko1637", "wko1638", "wko1639",
	"wko1640", "wko1641", "wko1642", "wko1643", "wko1644", "wko1645", "wko1646", "wko1647",
	"wko1648", "wko1649", "wko1650", "wko1651", "wko1652", "wko1653", "wko1654", "wko1655",
	"wko1656", "wko1657", "wko1658", "wko1659", "wko1660", "wko1661", "wko1662", "wko1663",
	"wko1664", "wko1665", "wko1666", "wko1667", "wko1668", "wko1669", "wko1670", "wko1671",
	"wko1672", "wko1673", "wko1674", "wko1675", "wko1676", "wko1677", "wko1678", "wko1679",
	"wko1680", "wko1681", "wko1682", "wko1683", "wko1684", "wko1685", "wko1686", "wko1687",
	"wko1688", "wko1689", "wko1690", "wko1691", "wko1692", "wko1693", "wko1694", "wko1695",
	"wko1696", "wko1697", "wko1698", "wko1699", "wko1700", "wko1701", "wko1702", "wko1703",
	"wko1704", "wko1705", "wko1706", "wko1707", "wko1708", "wko1709", "wko1710", "wko1711",
	"wko1712", "wko1713", "wko1714", "wko1715", "wko1716", "wko1717", "wko1718", "wko1719",
	"wko1720", "wko1721", "wko1722", "wko1723", "wko1724", "wko1725", "wko1726", "wko1727",
	"wko1728", "wko1729", "wko1730", "wko1731", "wko1732", "wko1733", "wko1734", "wko1735",
	"wko1736", "wko1737", "wko1738", "wko1739", "wko1740", "wko1741", "wko1742", "wko1743",
	"wko1744", "wko1745", "wko1746", "wko1747", "wko1748", "wko1749", "wko1750", "wko1751",
	"wko1752", "wko1753", "wko1754", "wko1755", "wko1756", "wko1757", "wko1758", "wko1759",
	"wko1760", "wko1761", "wko1762", "wko1763", "wko1764", "wko1765", "wko1766", "wko1767",
	"wko1768", "wko1769", "wko1770", "wko1771", "wko1772", "wko1773", "wko1774", "wko1775",
	"wko1776", "wko1777", "wko1778", "wko1779", "wko1780", "wko1781", "wko1782", "wko1783",
	"wko1784", "wko1785", "wko1786", "wko1787", "wko1788", "wko1789", "wko1790", "wko1791",
	"wko1792", "wko1793", "wko1794", "wko1795", "wko1796", "wko1797", "wko1798", "wko1799",
	"wko1800", "wko1801", "wko1802", "wko1803", "wko1804", "wko1805", "wko1806", "wko1807",
	"wko1808", "wko1809", "wko1810", "wko1811", "wko1812", "wko1813", "wko1814", "wko1815",
	"wko1816", "wko1817", "wko1818", "wko1819", "wko1820", "wko1821", "wko1822", "wko1823",
	"wko1824", "wko1825", "wko1826", "wko1827", "wko1828", "wko1829", "wko1830", "wko1831",
	"wko1832", "wko1833", "wko1834", "wko1835", "wko1836", "wko1837", "wko1838", "wko1839",
	"wko1840", "wko1841", "wko1842", "wko1843", "wko1844", "wko1845", "wko1846", "wko1847",
	"wko1848", "wko1849", "wko1850", "wko1851", "wko1852", "wko1853", "wko1854", "wko1855",
	"wko1856", "wko1857", "wko1858", "wko1859", "wko1860", "wko1861", "wko1862", "wko1863",
	"wko1864", "wko1865", "wko1866", "wko1867", "wko1868", "wko1869", "wko1870", "wko1871",
	"wko1872", "wko1873", "wko1874", "wko1875", "wko1876", "wko1877", "wko1878", "wko1879",
	"wko1880", "wko1881", "wko1882", "wko1883", "wko1884", "wko1885", "wko1886", "wko1887",
	"wko1888", "wko1889", "wko1890", "wko1891", "wko1892", "wko1893", "wko1894", "wko1895",
	"wko1896", "wko1897", "wko1898", "wko1899", "wko1900", "wko1901", "wko1902", "wko1903",
	"wko1904", "wko1905", "wko1906", "wko1907", "wko1908", "wko1909", "wko1910", "wko1911",
	"wko1912", "wko1913", "wko1914", "wko1915", "wko1916", "wko1917", "wko1918", "wko1919",
	"wko1920", "wko1921", "wko1922", "wko1923", "wko1924", "wko1925", "wko1926", "wko1927",
	"wko1928", "wko1929", "wko1930", "wko1931", "wko1932", "wko1933", "wko1934", "wko1935",
	"wko1936", "wko1937", "wko1938", "wko1939", "wko1940", "wko1941", "wko1942", "wko1943",
	"wko1944", "wko1945", "wko1946", "wko1947", "wko1948", "wko1949", "wko1950", "wko1951",
	"wko1952", "wko1953", "wko1954", "wko1955", "wko1956", "wko1957", "wko1958", "wko1959",
	"wko1960", "wko1961", "wko1962", "wko1963", "wko1964", "wko1965", "wko1966", "wko1967",
	"wko1968", "wko1969", "wko1970", "wko1971", "wko1972", "wko1973", "wko1974", "wko1975",
	"wko1976", "wko1977", "wko1978", "wko1979", "wko1980", "wko1981", "wko1982", "wko1983",
	"wko1984", "wko1985", "wko1986", "wko1987", "wko1988", "wko1989", "wko1990", "wko1991",
	"wko1992", "wko1993", "wko1994", "wko1995", "wko1996", "wko1997", "wko1998", "wko1999",
	"wko2000", "wko2001", "wko2002", "wko2003", "wko2004", "wko2005", "wko2006", "wko2007",
	"wko2008", "wko2009", "wko2010", "wko2011", "wko2012", "wko2013", "wko2014", "wko2015",
	"wko2016", "wko2017", "wko2018", "wko2019", "wko2020", "wko2021", "wko2022", "wko2023",
	"wko2024", "wko2025", "wko2026", "wko2027", "wko2028", "wko2029", "wko2030", "wko2031",
	"wko2032", "wko2033", "wko2034", "wko2035", "wko2036", "wko2037", "wko2038", "wko2039",
	"wko2040", "wko2041", "wko2042", "wko2043", "wko2044", "wko2045", "wko2046", "wko2047",
}
